package resource

import (
	"strings"

	"github.com/NazifToure01/AlloColis-admin/pkg/apisdk"
)

// Tone is the colour family a status badge is drawn in.
type Tone string

const (
	TonePurple Tone = "purple"
	ToneBlue   Tone = "blue"
	ToneGreen  Tone = "green"
	ToneRed    Tone = "red"
	ToneYellow Tone = "yellow"
	ToneOrange Tone = "orange"
	ToneGray   Tone = "gray"
)

// RoleTone colours a user's role badge.
func RoleTone(role string) Tone {
	switch role {
	case apisdk.RoleAdmin:
		return TonePurple
	case apisdk.RoleUser:
		return ToneBlue
	case apisdk.RoleModerator:
		return ToneGreen
	default:
		return ToneGray
	}
}

// AnnounceTone colours a listing status. Current statuses are lowercase;
// older listings still carry the capitalised labels.
func AnnounceTone(status string) Tone {
	switch status {
	case apisdk.AnnounceValidated:
		return ToneGreen
	case apisdk.AnnouncePending:
		return ToneYellow
	case apisdk.AnnounceCancelledLegacy:
		return ToneRed
	}

	switch strings.ToLower(status) {
	case apisdk.AnnounceInProgress:
		return ToneBlue
	case apisdk.AnnounceFinished:
		return ToneGreen
	case apisdk.AnnounceCancelled:
		return ToneRed
	default:
		return ToneGray
	}
}

// AnnounceLabel is the human label for a listing status.
func AnnounceLabel(status string) string {
	switch strings.ToLower(status) {
	case apisdk.AnnounceInProgress:
		return "En cours"
	case apisdk.AnnounceFinished:
		return "Terminé"
	case apisdk.AnnounceCancelled:
		return "Annulé"
	default:
		return status
	}
}

// VerificationTone colours a verification status.
func VerificationTone(status string) Tone {
	switch status {
	case apisdk.VerificationApproved:
		return ToneGreen
	case apisdk.VerificationRejected:
		return ToneRed
	case apisdk.VerificationInVerification:
		return ToneOrange
	default:
		return ToneGray
	}
}

// VerificationLabel is the human label for a verification status. Anything
// unrecognised reads as pending.
func VerificationLabel(status string) string {
	switch status {
	case apisdk.VerificationApproved:
		return "Approuvé"
	case apisdk.VerificationRejected:
		return "Rejeté"
	case apisdk.VerificationInVerification:
		return "En vérification"
	default:
		return "En attente"
	}
}

// Severity ranks a listing by how often it was reported.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

func ReportSeverity(count int) Severity {
	switch {
	case count >= 5:
		return SeverityHigh
	case count >= 3:
		return SeverityMedium
	default:
		return SeverityLow
	}
}

// Tone colours a severity badge.
func (s Severity) Tone() Tone {
	switch s {
	case SeverityHigh:
		return ToneRed
	case SeverityMedium:
		return ToneOrange
	default:
		return ToneYellow
	}
}
