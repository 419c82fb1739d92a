package dto

import "time"

type AppointmentListDTO struct {
	ID          string    `json:"id"`
	Date        string    `json:"date"`
	Time        string    `json:"time"`
	StartsAt    time.Time `json:"starts_at"`
	EndsAt      time.Time `json:"ends_at"`
	Status      string    `json:"status"`
	ClientName  string    `json:"client_name,omitempty"`
	ProName     string    `json:"professional_name,omitempty"`
	ServiceName string    `json:"service_name"`
	TotalPrice  float64   `json:"total_price"`
}
