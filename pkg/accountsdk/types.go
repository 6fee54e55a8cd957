package accountsdk

// Response is the generic JSON envelope every API endpoint returns.
type Response struct {
	Success bool   `json:"success"`
	Message string `json:"message,omitempty"`
}

// SignupRequest registers a new account.
type SignupRequest struct {
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

// LoginRequest authenticates an identity/secret pair.
type LoginRequest struct {
	Identity string `json:"identity"`
	Secret   string `json:"secret"`
}

// ChangePasswordRequest rotates an account's secret.
type ChangePasswordRequest struct {
	Identity      string `json:"identity"`
	CurrentSecret string `json:"currentSecret"`
	NewSecret     string `json:"newSecret"`
}

// UpdateProfileRequest carries the whitelisted profile fields. The update is
// a full overwrite: omitted fields are cleared server-side.
type UpdateProfileRequest struct {
	Identity    string `json:"identity"`
	DisplayName string `json:"displayName"`
	FullName    string `json:"fullName"`
	DateOfBirth string `json:"dateOfBirth"`
	Gender      string `json:"gender"`
	AvatarType  string `json:"avatarType"`
	Company     string `json:"company"`
	University  string `json:"university"`
	Profession  string `json:"profession"`
}

// Profile is the sanitized account projection. It never carries credential
// material.
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

// ProfileResponse wraps a profile in the standard envelope.
type ProfileResponse struct {
	Success bool     `json:"success"`
	Message string   `json:"message,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
}

// HealthChecks reports the status of the service's critical dependencies.
type HealthChecks struct {
	Database string `json:"database"`
}

// HealthResponse is returned by the liveness and readiness endpoints.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}
