package booking

import (
	"bytes"
	"context"
	"fmt"
	"net/http"

	"eventpulse/events"
	"eventpulse/utils"

	"github.com/julienschmidt/httprouter"
	"github.com/phpdave11/gofpdf"
	"github.com/skip2/go-qrcode"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PrintBooking handles GET /api/bookings/:id/print: a PDF confirmation
// with the event details and a QR code carrying the booking reference.
func PrintBooking(w http.ResponseWriter, r *http.Request, ps httprouter.Params) {
	ctx, cancel := context.WithTimeout(r.Context(), handlerTimeout)
	defer cancel()

	id, err := primitive.ObjectIDFromHex(ps.ByName("id"))
	if err != nil {
		utils.RespondWithError(w, http.StatusBadRequest, "Malformed booking id")
		return
	}

	b, err := Get(ctx, id)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	ev, err := events.GetByID(ctx, b.EventID)
	if err != nil {
		writeBookingError(w, err)
		return
	}

	qrPayload := fmt.Sprintf("%s|%s", b.ID.Hex(), ev.Slug)
	qrPNG, err := qrcode.Encode(qrPayload, qrcode.Medium, 256)
	if err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Arial", "B", 16)
	pdf.Cell(40, 10, "Booking Confirmation")
	pdf.Ln(12)

	pdf.SetFont("Arial", "", 12)
	pdf.Cell(0, 10, fmt.Sprintf("Event: %s", ev.Title))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Date: %s at %s", ev.Date, ev.Time))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Venue: %s, %s", ev.Venue, ev.Location))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Email: %s", b.Email))
	pdf.Ln(8)
	pdf.Cell(0, 10, fmt.Sprintf("Reference: %s", b.ID.Hex()))
	pdf.Ln(12)

	imgOpts := gofpdf.ImageOptions{ImageType: "PNG"}
	pdf.RegisterImageOptionsReader("qr", imgOpts, bytes.NewReader(qrPNG))
	pdf.ImageOptions("qr", 150, 40, 40, 40, false, imgOpts, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		utils.RespondWithError(w, http.StatusInternalServerError, "Failed to generate PDF")
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=booking-"+b.ID.Hex()+".pdf")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}
