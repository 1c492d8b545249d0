package inquiry

import (
	"io"

	"github.com/gocarina/gocsv"
)

// exportRow mirrors the dashboard's CSV column order.
type exportRow struct {
	Name      string `csv:"Name"`
	Pharmacy  string `csv:"Pharmacy"`
	Type      string `csv:"Type"`
	Service   string `csv:"Service"`
	City      string `csv:"City"`
	Phone     string `csv:"Phone"`
	Email     string `csv:"Email"`
	Status    string `csv:"Status"`
	Budget    string `csv:"Budget"`
	Submitted string `csv:"Submitted"`
}

// ExportCSV writes all inquiries to w as CSV.
func (s *DefaultInquiryLedger) ExportCSV(w io.Writer) error {
	inquiries := s.Load()

	rows := make([]exportRow, 0, len(inquiries))
	for _, inq := range inquiries {
		rows = append(rows, exportRow{
			Name:      inq.FullName,
			Pharmacy:  inq.BusinessName,
			Type:      inq.PharmacyType,
			Service:   inq.ServiceName,
			City:      inq.City,
			Phone:     inq.Phone,
			Email:     inq.Email,
			Status:    inq.Status,
			Budget:    inq.Budget,
			Submitted: inq.Timestamp,
		})
	}
	return gocsv.Marshal(&rows, w)
}
