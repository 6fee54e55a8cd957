package domain

import "time"

// Gender values accepted on a profile. Anything else is rejected at the
// boundary; an absent value reads back as GenderUnspecified.
const (
	GenderMale        = "male"
	GenderFemale      = "female"
	GenderNonbinary   = "nonbinary"
	GenderUnspecified = "unspecified"
)

// ValidGender reports whether g is one of the accepted gender values.
// The empty string is valid: it means the caller never set one.
func ValidGender(g string) bool {
	switch g {
	case "", GenderMale, GenderFemale, GenderNonbinary, GenderUnspecified:
		return true
	}
	return false
}

// Account is the sole persisted entity. Identity is the unique login key
// (an email-formatted string) and is immutable after creation. PasswordHash
// is bcrypt-encoded and must never leave the store layer in a response.
type Account struct {
	ID           string `bson:"_id"`
	Identity     string `bson:"identity"`
	PasswordHash string `bson:"password_hash"`

	DisplayName string `bson:"display_name,omitempty"`
	FullName    string `bson:"full_name,omitempty"`
	DateOfBirth string `bson:"date_of_birth,omitempty"` // literal "YYYY-MM-DD", not parsed
	Gender      string `bson:"gender,omitempty"`
	AvatarType  string `bson:"avatar_type,omitempty"`
	Company     string `bson:"company,omitempty"`
	University  string `bson:"university,omitempty"`
	Profession  string `bson:"profession,omitempty"`

	ProfileCompleted bool `bson:"profile_completed"`

	CreatedAt time.Time `bson:"created_at"`
	UpdatedAt time.Time `bson:"updated_at"`
}

// Profile is the sanitized projection of an Account returned to callers.
// It never carries the password hash.
type Profile struct {
	Identity         string `json:"identity"`
	DisplayName      string `json:"displayName"`
	FullName         string `json:"fullName"`
	DateOfBirth      string `json:"dateOfBirth"`
	Gender           string `json:"gender"`
	AvatarType       string `json:"avatarType"`
	Company          string `json:"company"`
	University       string `json:"university"`
	Profession       string `json:"profession"`
	ProfileCompleted bool   `json:"profileCompleted"`
}

// ProfileOf builds the sanitized projection for a. An unset gender (and the
// avatar type that mirrors it) reads back as "unspecified".
func ProfileOf(a Account) Profile {
	gender := a.Gender
	if gender == "" {
		gender = GenderUnspecified
	}
	avatar := a.AvatarType
	if avatar == "" {
		avatar = gender
	}

	return Profile{
		Identity:         a.Identity,
		DisplayName:      a.DisplayName,
		FullName:         a.FullName,
		DateOfBirth:      a.DateOfBirth,
		Gender:           gender,
		AvatarType:       avatar,
		Company:          a.Company,
		University:       a.University,
		Profession:       a.Profession,
		ProfileCompleted: a.ProfileCompleted,
	}
}

// ProfileUpdate carries the whitelisted mutable fields of a profile update.
// Updates are a full overwrite of the whitelist: a zero-valued field here
// clears the stored value. Callers must resend the entire profile.
type ProfileUpdate struct {
	DisplayName string
	FullName    string
	DateOfBirth string
	Gender      string
	AvatarType  string
	Company     string
	University  string
	Profession  string
}
