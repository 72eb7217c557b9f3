package apisdk

import "encoding/json"

// ============================================================================
// Pagination
// ============================================================================

// Page is one page of a paginated listing, whatever envelope the backend used.
type Page[T any] struct {
	Items []T `json:"items"`
	Total int `json:"total"`
}

// TotalPages returns ceil(Total/pageSize), never less than 1.
func (p Page[T]) TotalPages(pageSize int) int {
	if pageSize <= 0 || p.Total <= 0 {
		return 1
	}
	return (p.Total + pageSize - 1) / pageSize
}

// dataEnvelope is the `{data, total}` shape used by announces and verifications.
type dataEnvelope[T any] struct {
	Data  []T `json:"data"`
	Total int `json:"total"`
}

// ============================================================================
// Auth Types
// ============================================================================

// Roles known to the backend.
const (
	RoleAdmin     = "admin"
	RoleUser      = "user"
	RoleModerator = "moderator"
)

// Credentials is the body of both login endpoints.
type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// RegisterRequest is the body of POST /users/register.
type RegisterRequest struct {
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// AuthResponse is returned by login, registration and token renewal.
// The refresh token rotates on every renewal.
type AuthResponse struct {
	Token        string `json:"token"`
	RefreshToken string `json:"refreshToken"`
	User         *User  `json:"user"`
}

// ============================================================================
// Users
// ============================================================================

// VerificationFlags records which contact channels a user has confirmed.
type VerificationFlags struct {
	Email     bool `json:"email"`
	Telephone bool `json:"telephone"`
	Identity  bool `json:"identity"`
}

// User is an account on the platform. The backend names the identifier
// `id` on some routes and `_id` on others; Key returns whichever is set.
type User struct {
	ID             string             `json:"id,omitempty"`
	ObjectID       string             `json:"_id,omitempty"`
	FullName       string             `json:"fullName"`
	Email          string             `json:"email"`
	Phone          string             `json:"phone"`
	Password       string             `json:"password,omitempty"`
	Photo          string             `json:"photo,omitempty"`
	Role           string             `json:"role"`
	IdentityStatus string             `json:"identityStatus,omitempty"`
	Verification   *VerificationFlags `json:"verification,omitempty"`
}

// Key returns the user's identifier.
func (u User) Key() string {
	if u.ID != "" {
		return u.ID
	}
	return u.ObjectID
}

// IsAdmin reports whether the user may use the console.
func (u User) IsAdmin() bool { return u.Role == RoleAdmin }

// userEnvelope matches mutation responses that may wrap the user.
type userEnvelope struct {
	User *User `json:"user"`
}

// ============================================================================
// Announces
// ============================================================================

// Announce statuses seen in the wild. Legacy capitalised values are still
// returned for older listings.
const (
	AnnounceInProgress      = "en_cours"
	AnnounceFinished        = "terminé"
	AnnounceCancelled       = "annulé"
	AnnounceValidated       = "Validé"
	AnnouncePending         = "En attente"
	AnnounceCancelledLegacy = "Annulé"
)

// PickupLocation is where a parcel is handed over.
type PickupLocation struct {
	Address string  `json:"address"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

// Announce is a shipment listing published by a traveller.
type Announce struct {
	ID               string          `json:"_id"`
	Title            string          `json:"title,omitempty"`
	TrackingNumber   string          `json:"tracking_number,omitempty"`
	DepartureCountry string          `json:"departure_country"`
	DepartureCity    string          `json:"departure_city,omitempty"`
	ArrivalCountry   string          `json:"arrival_country"`
	ArrivalCity      string          `json:"arrival_city,omitempty"`
	Contact          string          `json:"contact,omitempty"`
	TravelTicket     string          `json:"travel_tiket,omitempty"`
	DepartureDate    string          `json:"departure_date"`
	ArrivalDate      string          `json:"arrival_date"`
	Created          string          `json:"created,omitempty"`
	Price            float64         `json:"price"`
	Availability     float64         `json:"availability"`
	Status           string          `json:"status"`
	Verified         bool            `json:"verified"`
	Announcer        string          `json:"announcer,omitempty"`
	PickupLocation   *PickupLocation `json:"pickup_location,omitempty"`
	TrackingStatus   string          `json:"tracking_status,omitempty"`
}

// ReportRequest is the body of POST /annonces/{id}/reports.
type ReportRequest struct {
	Reason  string `json:"reason"`
	Details string `json:"details"`
}

// ============================================================================
// Verifications
// ============================================================================

// Verification statuses.
const (
	VerificationPending        = "pending"
	VerificationInVerification = "inVerification"
	VerificationApproved       = "approved"
	VerificationRejected       = "rejected"
)

// VerificationUser is the subset of the user embedded in a verification.
type VerificationUser struct {
	ID       string `json:"_id"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
}

// VerificationFiles links to the uploaded identity documents.
type VerificationFiles struct {
	Passport string `json:"passport,omitempty"`
	IDFront  string `json:"idFront,omitempty"`
	IDBack   string `json:"idBack,omitempty"`
	Video    string `json:"video,omitempty"`
}

// Verification is an identity-document submission awaiting review.
type Verification struct {
	ID           string            `json:"_id"`
	User         VerificationUser  `json:"user"`
	DocumentType string            `json:"documentType"`
	Files        VerificationFiles `json:"files"`
	Status       string            `json:"status"`
	AdminComment string            `json:"adminComment,omitempty"`
	CreatedAt    string            `json:"createdAt"`
}

// Reviewable reports whether an admin may approve or reject it.
func (v Verification) Reviewable() bool { return v.Status == VerificationInVerification }

// ReviewRequest is the body of POST /users/admin/verify-identity-documents.
type ReviewRequest struct {
	VerificationID string `json:"verificationId"`
	Status         string `json:"status"`
	AdminComment   string `json:"adminComment,omitempty"`
}

// ============================================================================
// Reports
// ============================================================================

// ReportedAnnounce is the subset of the listing embedded in a report summary.
type ReportedAnnounce struct {
	ID               string `json:"_id"`
	Title            string `json:"title"`
	DepartureCountry string `json:"departure_country"`
	ArrivalCountry   string `json:"arrival_country"`
	Created          string `json:"created"`
}

// LastReport is the most recent complaint against a listing.
type LastReport struct {
	Reason    string `json:"reason"`
	Details   string `json:"details"`
	CreatedAt string `json:"createdAt"`
}

// ReportSummary aggregates every abuse report filed against one listing.
type ReportSummary struct {
	ID         string           `json:"_id"`
	Count      int              `json:"count"`
	Announce   ReportedAnnounce `json:"announce"`
	LastReport LastReport       `json:"lastReport"`
}

// ============================================================================
// Location & Contact
// ============================================================================

// MinPlaceQuery is the shortest address fragment worth autocompleting.
const MinPlaceQuery = 3

// Prediction is one address autocomplete suggestion.
type Prediction struct {
	Description string `json:"description"`
	PlaceID     string `json:"place_id"`
}

// PlaceDetails is the geocoder's result, passed through untouched.
type PlaceDetails = json.RawMessage

// ContactMessage is the body of POST /contact/messages.
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}
