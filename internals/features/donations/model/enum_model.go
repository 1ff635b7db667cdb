package model

/* =========================================================
   Enum status & kategori donasi
========================================================= */

// Payment status
const (
	StatusPending   = "pending"
	StatusCompleted = "completed"
	// failed tidak pernah ditulis oleh verify handler (mismatch = no-op);
	// disediakan untuk koreksi manual/operasional.
	StatusFailed = "failed"
)

// Donation cadence
const (
	TypeOneTime = "one-time"
	TypeMonthly = "monthly"
	TypeYearly  = "yearly"
)

// Purpose category
const (
	PurposeEducation  = "education"
	PurposeHealthcare = "healthcare"
	PurposeFood       = "food"
	PurposeShelter    = "shelter"
	PurposeGeneral    = "general"
)
