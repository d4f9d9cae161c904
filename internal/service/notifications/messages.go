package notifications

import (
	"fmt"
	"strings"

	"github.com/m04kA/SMC-ClinicReservationService/internal/domain"
)

func subject(kind domain.NotificationEvent) string {
	switch kind {
	case domain.EventCreated:
		return "Your reservation has been received"
	case domain.EventConfirmed:
		return "Your reservation is confirmed"
	case domain.EventRescheduled:
		return "Your reservation has been rescheduled"
	case domain.EventCancelled:
		return "Your reservation has been cancelled"
	default:
		return "Reservation update"
	}
}

func body(ev Event, recipient *domain.User) string {
	r := ev.Reservation
	current := fmt.Sprintf("%s %s", domain.FormatDate(r.Date), r.Window())

	var b strings.Builder
	if recipient.Name != "" {
		fmt.Fprintf(&b, "Hello, %s!\n\n", recipient.Name)
	} else {
		b.WriteString("Hello!\n\n")
	}

	switch ev.Kind {
	case domain.EventCreated:
		fmt.Fprintf(&b, "Your reservation for %s was created with status %s.\n", current, r.Status)
	case domain.EventConfirmed:
		fmt.Fprintf(&b, "Your reservation for %s is confirmed.\n", current)
	case domain.EventRescheduled:
		if ev.Previous != nil {
			fmt.Fprintf(&b, "Your reservation was moved from %s %s to %s.\n",
				domain.FormatDate(ev.Previous.Date), ev.Previous.Window, current)
		} else {
			fmt.Fprintf(&b, "Your reservation was moved to %s.\n", current)
		}
	case domain.EventCancelled:
		fmt.Fprintf(&b, "Your reservation for %s was cancelled.\n", current)
	}

	if r.Reason != nil && *r.Reason != "" {
		fmt.Fprintf(&b, "Reason for visit: %s\n", *r.Reason)
	}
	if ev.Note != nil && *ev.Note != "" {
		fmt.Fprintf(&b, "Note from the clinic: %s\n", *ev.Note)
	}

	fmt.Fprintf(&b, "\nReservation ID: %s\n", r.ID)
	return b.String()
}
