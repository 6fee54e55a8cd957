/*
Package accountsdk provides a typed HTTP client for the accounts service.

# Overview

The SDK wraps the service's JSON API: signup, login, profile read/update,
and password change. The same request/response types are used by the server
handlers, so the wire format is defined exactly once.

Create a Client and call operations with a context:

	client := accountsdk.NewClient("http://localhost:3000")

	// Check service health
	health, err := client.GetLiveness(ctx)

	// Register an account
	err = client.Signup(ctx, "a@x.com", "secret")

	// Authenticate. A wrong secret is a soft failure, not an error:
	// the result carries success=false with a generic message.
	result, err := client.Login(ctx, "a@x.com", "secret")

	// Read and update the profile
	profile, err := client.GetProfile(ctx, "a@x.com")
	profile, err = client.UpdateProfile(ctx, accountsdk.UpdateProfileRequest{
		Identity: "a@x.com",
		FullName: "Ann Example",
	})

	// Rotate the password
	err = client.ChangePassword(ctx, "a@x.com", "secret", "new-secret")

# Error Handling

Non-2xx responses are returned as *APIError carrying the HTTP status code
and the server's message. Login is the exception: invalid credentials come
back as a 200 with success=false, deliberately indistinguishable between an
unknown identity and a wrong secret.

# Profile Update Semantics

UpdateProfile is a full overwrite of the whitelisted profile fields. Fields
omitted from the request are cleared on the server, so callers must resend
the entire profile on every update.
*/
package accountsdk
