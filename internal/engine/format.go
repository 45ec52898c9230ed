package engine

import (
	"fmt"
	"strings"

	"github.com/dekoninklijkeloop/dkl-assistant/internal/kb"
)

const (
	scheduleNotFoundText = "Ik kon geen specifieke informatie over dat deel van het programma vinden. Probeer je vraag anders te formuleren, of vraag naar het volledige programma."
	scheduleDisclaimer   = "\nLet op: Tijden zijn indicatief en kunnen licht afwijken."

	// actionPrefix is the fixed marker the UI layer parses to offer a
	// clickable shortcut.
	actionPrefix = "\n\nKlik hier om: "
)

// formatScheduleResponse renders a schedule search result. The original query
// is consulted to phrase single answers to "wanneer"/"hoe laat" questions more
// conversationally.
func formatScheduleResponse(result ScheduleResult, query string) string {
	items := result.Items
	normalizedQuery := Normalize(query)

	if len(items) == 0 {
		return scheduleNotFoundText
	}

	if result.ContextHint == "schedule_full" {
		var b strings.Builder
		b.WriteString("Hier is het volledige programma voor De Koninklijke Loop 2026:\n\n")
		for _, item := range items {
			writeScheduleBullet(&b, item)
		}
		b.WriteString(scheduleDisclaimer)
		return b.String()
	}

	if len(items) == 1 {
		item := items[0]
		var response string
		if strings.Contains(normalizedQuery, "wanneer") || strings.Contains(normalizedQuery, "hoe laat") {
			response = fmt.Sprintf("De %q is om %s.", item.EventDescription, item.Time)
		} else {
			response = fmt.Sprintf("Om %s is het volgende programma-onderdeel: %s.", item.Time, item.EventDescription)
		}
		if item.Details != "" {
			response += "\nDetails: " + item.Details
		}
		return response
	}

	if len(items) <= 4 {
		var b strings.Builder
		b.WriteString("Ik heb deze relevante tijden gevonden in het programma:\n\n")
		for _, item := range items {
			writeScheduleBullet(&b, item)
		}
		return b.String()
	}

	var b strings.Builder
	b.WriteString("Ik heb meerdere programma-onderdelen gevonden die relevant lijken:\n\n")
	for _, item := range items[:4] {
		writeScheduleBullet(&b, item)
	}
	fmt.Fprintf(&b, "• ... en nog %d andere.\n", len(items)-4)
	b.WriteString("\nKun je je vraag specifieker maken (bijvoorbeeld door een afstand te noemen)? Of vraag naar het volledige programma.")
	return b.String()
}

func writeScheduleBullet(b *strings.Builder, item kb.ScheduleItem) {
	fmt.Fprintf(b, "• %s: %s", item.Time, item.EventDescription)
	if item.Details != "" {
		fmt.Fprintf(b, "\n  (%s)", item.Details)
	}
	b.WriteString("\n")
}

// formatFAQAnswer renders a FAQ match, appending the action suffix when the
// entry carries one.
func formatFAQAnswer(match *FAQMatch) string {
	response := match.Answer
	if match.Action && match.ActionText != "" {
		response += actionPrefix + match.ActionText
	}
	return response
}
