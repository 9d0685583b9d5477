// Package display maps between internal identifiers and the strings the
// presentation layer shows: decorated selector entries, localized field
// labels and date formatting.
package display

import (
	"strings"
	"time"
)

// ExtractName strips the "ID: Name" decoration a selector entry may carry
// and returns the trimmed name. Strings without a colon are returned
// trimmed, so the function is idempotent on already-extracted names.
func ExtractName(decorated string) string {
	if decorated == "" {
		return ""
	}
	if i := strings.Index(decorated, ":"); i >= 0 {
		return strings.TrimSpace(decorated[i+1:])
	}
	return strings.TrimSpace(decorated)
}

// labels maps internal field identifiers to Slovenian display labels.
var labels = map[string]string{
	// Entity fields.
	"first_name":         "Ime",
	"middle_name":        "Srednje ime",
	"last_name":          "Priimek",
	"bio":                "Biografija",
	"name":               "Naziv",
	"type":               "Tip",
	"description":        "Opis",
	"title":              "Naslov",
	"creation_year":      "Leto nastanka",
	"disc_count":         "Število plošč",
	"current_year_sales": "Letošnja prodaja",
	"remaining_stock":    "Zaloga",
	"wholesale_price":    "Veleprodajna cena",
	"retail_price":       "Maloprodajna cena",
	"role":               "Vloga",
	"arrangement":        "Aranžma",
	"track_number":       "Številka skladbe",

	// Joined relation fields.
	"ensemble_name":        "Ansambel",
	"musician_name":        "Glasbenik",
	"composition_title":    "Skladba",
	"record_title":         "Plošča",
	"ensemble_names":       "Ansambli",
	"performing_ensembles": "Izvajalci",

	// Analytics fields.
	"compositions_count": "Število skladb",
	"musicians_count":    "Število glasbenikov",
	"ensembles_count":    "Število ansamblov",
	"records_count":      "Število plošč",
	"total_revenue":      "Skupni prihodek",
	"total_profit":       "Skupni dobiček",
	"sales_percentage":   "Odstotek prodaje",

	// Identifier and system fields.
	"ensemble_id":    "ID ansambla",
	"musician_id":    "ID glasbenika",
	"composition_id": "ID skladbe",
	"record_id":      "ID plošče",
	"created_at":     "Ustvarjeno",
	"action_date":    "Datum",
	"action_type":    "Dejanje",
	"entity_type":    "Entiteta",
	"action_details": "Podrobnosti",
	"ip_address":     "Naslov IP",
}

// FieldLabel returns the localized label for an internal field name.
// Unknown fields fall back to the field name with underscores replaced
// by spaces.
func FieldLabel(field string) string {
	if label, ok := labels[field]; ok {
		return label
	}
	return strings.ReplaceAll(field, "_", " ")
}

// datePatterns are tried in order when formatting a raw date value.
var datePatterns = []string{
	"2006-01-02",
	"02/01/2006",
	"01/02/2006",
	"2006.01.02",
}

// FormatDate reformats a raw date value to day.month.year. A bare 4-digit
// year is returned unchanged, as is any value no pattern matches. Empty
// input yields an empty string.
func FormatDate(raw string) string {
	raw = strings.TrimSpace(strings.ReplaceAll(raw, "'", ""))
	if raw == "" || strings.EqualFold(raw, "null") {
		return ""
	}

	if isYear(raw) {
		return raw
	}

	for _, pattern := range datePatterns {
		if t, err := time.Parse(pattern, raw); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return raw
}

func isYear(s string) bool {
	if len(s) != 4 {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
