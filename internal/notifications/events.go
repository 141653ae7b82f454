package notifications

import "fmt"

const EventBookingCreated = "booking.created"

// BookingCreated is published once a booking is durably stored. It carries
// everything the notifier needs so it never has to query the database.
type BookingCreated struct {
	BookingID string `json:"bookingId"`
	RoomID    string `json:"roomId"`
	RoomName  string `json:"roomName"`
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Email     string `json:"email"`
}

type EmailMessage struct {
	To      string
	Subject string
	Body    string
}

// OperatorAlert is the heads-up mail to the facilities operator.
func (e BookingCreated) OperatorAlert(operatorEmail string) EmailMessage {
	return EmailMessage{
		To:      operatorEmail,
		Subject: fmt.Sprintf("New Booking: %s on %s", e.RoomName, e.Date),
		Body: fmt.Sprintf("Room: %s\nDate: %s\nTime: %s-%s\nBooked by: %s\n",
			e.RoomName, e.Date, e.StartTime, e.EndTime, e.Email),
	}
}

// BookerConfirmation is the receipt mail to the person who booked.
func (e BookingCreated) BookerConfirmation() EmailMessage {
	return EmailMessage{
		To:      e.Email,
		Subject: fmt.Sprintf("Booking Confirmed: %s on %s", e.RoomName, e.Date),
		Body: fmt.Sprintf("Your booking is confirmed.\n\nRoom: %s\nDate: %s\nTime: %s-%s\nBooking ID: %s\n",
			e.RoomName, e.Date, e.StartTime, e.EndTime, e.BookingID),
	}
}
