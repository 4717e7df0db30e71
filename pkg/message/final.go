package message

import (
	"fmt"
	"strings"
)

// DefaultEncouragement is used when the questionnaire was skipped.
const DefaultEncouragement = "You are capable of amazing things. Trust yourself and take that next step forward."

// ManualCopyHint is shown when the message cannot be copied for the user.
const ManualCopyHint = "Copying failed. Please select the message and copy it manually."

// Final builds the voice memo request around encouragement.
func Final(encouragement string) string {
	encouragement = strings.TrimSpace(encouragement)
	if encouragement == "" {
		encouragement = DefaultEncouragement
	}
	return fmt.Sprintf("Could you do me a favor and record a voice memo saying the following and send it to me: \n\n"+
		"\"%s\" \n\n"+
		"Feel free to put your own spin to it or record it in a way that feels right.\n\n"+
		"(This has been created as a part of an art project exploring vulnerability, support, and introspection.)",
		encouragement)
}

// TrimWords keeps the first max words of text, joined by single spaces.
// Text within the limit is returned unchanged.
func TrimWords(text string, max int) string {
	fields := strings.Fields(text)
	if max <= 0 || len(fields) <= max {
		return text
	}
	return strings.Join(fields[:max], " ")
}
