package report

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"hospital-management-api/internal/delivery/dto"
	"hospital-management-api/internal/domain/entity"

	"github.com/jung-kurt/gofpdf"
)

// BuildUsersReport renders the full staff roster as a PDF: per-role summary
// counts followed by a tabular listing.
func BuildUsersReport(users []dto.UserResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 18)
	pdf.CellFormat(0, 10, "Healthcare System - Users Report", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 6, "Generated on: "+time.Now().Format("02 Jan 2006 15:04"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	counts := map[string]int{}
	for _, u := range users {
		counts[u.Role]++
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Summary Statistics", "", 1, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 10)
	pdf.CellFormat(0, 5, fmt.Sprintf("Total Users: %d", len(users)), "", 1, "L", false, 0, "")
	for _, role := range entity.AllRoles {
		pdf.CellFormat(0, 5, fmt.Sprintf("%ss: %d", titleCase(role), counts[role]), "", 1, "L", false, 0, "")
	}
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(0, 7, "Users List", "", 1, "L", false, 0, "")

	colWidths := []float64{50, 60, 30, 40}
	headers := []string{"Name", "Email", "Role", "Contact"}
	pdf.SetFont("Helvetica", "B", 9)
	for i, h := range headers {
		pdf.CellFormat(colWidths[i], 6, h, "B", 0, "L", false, 0, "")
	}
	pdf.Ln(-1)

	pdf.SetFont("Helvetica", "", 9)
	for _, u := range users {
		pdf.CellFormat(colWidths[0], 6, u.Name, "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[1], 6, u.Email, "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[2], 6, u.Role, "", 0, "L", false, 0, "")
		pdf.CellFormat(colWidths[3], 6, u.ContactNo, "", 0, "L", false, 0, "")
		pdf.Ln(-1)
	}

	pdf.SetY(-15)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.CellFormat(0, 5, "Healthcare Management System - Generated Report", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// BuildUserProfile renders a single staff member's profile PDF.
func BuildUserProfile(user *dto.UserResponse) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.SetAutoPageBreak(true, 20)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.SetTextColor(25, 118, 210)
	pdf.CellFormat(0, 12, "Healthcare Management System", "", 1, "C", false, 0, "")

	pdf.SetFont("Helvetica", "B", 14)
	pdf.SetTextColor(51, 51, 51)
	pdf.CellFormat(0, 8, "User Profile Report", "", 1, "C", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 5, "Generated on: "+time.Now().Format("02 Jan 2006 15:04"), "", 1, "R", false, 0, "")
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 13)
	pdf.SetTextColor(25, 118, 210)
	pdf.CellFormat(0, 8, "Personal Information", "", 1, "L", false, 0, "")

	pdf.SetTextColor(51, 51, 51)
	rows := [][2]string{
		{"Full Name", user.Name},
		{"Email Address", user.Email},
		{"Contact Number", user.ContactNo},
		{"Role", titleCase(user.Role)},
		{"User ID", user.ID.String()},
		{"Account Created", user.CreatedAt.Format("02 Jan 2006")},
		{"Last Updated", user.UpdatedAt.Format("02 Jan 2006")},
		{"Address", user.Address},
	}
	for _, row := range rows {
		pdf.SetFont("Helvetica", "", 10)
		pdf.CellFormat(45, 7, row[0]+":", "", 0, "L", false, 0, "")
		pdf.SetFont("Helvetica", "B", 10)
		pdf.MultiCell(0, 7, row[1], "", "L", false)
	}

	pdf.SetY(-15)
	pdf.SetFont("Helvetica", "I", 7)
	pdf.SetTextColor(153, 153, 153)
	pdf.CellFormat(0, 5, "This document is confidential and intended for authorized personnel only.", "", 0, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func titleCase(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
