package engine

import (
	"regexp"
	"strings"
)

// Intent is the coarse category a user message is routed to.
type Intent string

const (
	IntentGreeting Intent = "greeting"
	IntentThanks   Intent = "thanks"
	IntentFarewell Intent = "farewell"
	IntentHelp     Intent = "help"
	IntentSchedule Intent = "schedule"
	IntentFAQ      Intent = "faq"
)

var (
	greetingRe = regexp.MustCompile(`^(hallo|hoi|hey|goedemorgen|goedemiddag|goedenavond|hee|hi)`)
	thanksRe   = regexp.MustCompile(`^(dank|bedankt|thanks|dankjewel|dankuwel)`)
	farewellRe = regexp.MustCompile(`^(doei|tot ziens|bye|dag|tot later)`)
	helpRe     = regexp.MustCompile(`^(help|hulp|assistentie|wat kan je)`)

	// Schedule signals: a short distance, a schedule keyword, or an HH:MM-ish
	// time (colons are stripped by normalization, so this matches the "10u30"
	// spelling).
	intentDistanceRe = regexp.MustCompile(`\b\d{1,2}\s?(km|kilometer)\b`)
	intentTimeRe     = regexp.MustCompile(`\d{1,2}[:u]\d{2}`)
)

var scheduleSignalWords = []string{
	"schema", "programma", "tijd", "tijden", "uur", "starttijd", "eindtijd",
	"finish", "start", "wanneer begint", "hoe laat", "planning", "rustpunt",
	"aanvang", "vertrek", "feest",
}

// DetectIntent classifies a raw message. The cascade is ordered: courteous
// openers and closers win over schedule signals, so a greeting that happens to
// mention a distance is still a greeting.
func DetectIntent(message string) Intent {
	m := Normalize(message)

	switch {
	case greetingRe.MatchString(m):
		return IntentGreeting
	case thanksRe.MatchString(m) || strings.Contains(m, "dank je") || strings.Contains(m, "dank u"):
		return IntentThanks
	case farewellRe.MatchString(m):
		return IntentFarewell
	case helpRe.MatchString(m):
		return IntentHelp
	}

	if intentDistanceRe.MatchString(m) || intentTimeRe.MatchString(m) {
		return IntentSchedule
	}
	for _, word := range scheduleSignalWords {
		if strings.Contains(m, word) {
			return IntentSchedule
		}
	}

	return IntentFAQ
}
