package domain

import "strings"

type ReportFormat string

const (
	ReportJSON ReportFormat = "json"
	ReportPDF  ReportFormat = "pdf"
	ReportXLSX ReportFormat = "xlsx"
	ReportHTML ReportFormat = "html"
)

var reportContentTypes = map[ReportFormat]string{
	ReportJSON: "application/json",
	ReportPDF:  "application/pdf",
	ReportXLSX: "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet",
	ReportHTML: "text/html; charset=utf-8",
}

// ParseReportFormat accepts the format names clients send, including the
// "excel" alias.
func ParseReportFormat(s string) (ReportFormat, error) {
	f := ReportFormat(strings.ToLower(strings.TrimSpace(s)))
	if f == "" {
		return ReportJSON, nil
	}
	if f == "excel" {
		return ReportXLSX, nil
	}
	if _, ok := reportContentTypes[f]; !ok {
		return "", &ReportFormatError{Format: s}
	}
	return f, nil
}

func (f ReportFormat) ContentType() string {
	return reportContentTypes[f]
}

func (f ReportFormat) Ext() string {
	return "." + string(f)
}
