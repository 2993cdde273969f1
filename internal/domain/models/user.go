package models

import "time"

type UserRole string

const (
	RoleUser  UserRole = "User"
	RoleAdmin UserRole = "Admin"
)

type ChallengePurpose string

const (
	PurposeInvalidPIN ChallengePurpose = "InvalidPIN"
	PurposeForgetPIN  ChallengePurpose = "ForgetPIN"
)

type ChallengeKind string

const (
	ChallengeCode  ChallengeKind = "Code"
	ChallengeToken ChallengeKind = "Token"
)

// Challenge is one pending authentication challenge, keyed by purpose on
// the user record.
type Challenge struct {
	Kind      ChallengeKind `json:"kind"`
	Value     string        `json:"value"`
	ExpiresAt time.Time     `json:"expiresAt"`
}

// User mirrors the record owned by the user service.
type User struct {
	ID               string                         `json:"id"`
	FirstName        string                         `json:"firstName"`
	LastName         string                         `json:"lastName"`
	Email            string                         `json:"email"`
	Role             UserRole                       `json:"role"`
	DefaultAccountID string                         `json:"defaultAccountId"`
	Challenges       map[ChallengePurpose]Challenge `json:"challenges"`
}

// Name is the display name used in history views and notifications.
func (u User) Name() string {
	return u.FirstName + " " + u.LastName
}
