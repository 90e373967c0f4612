// Package api provides typed wrappers for the YouthGuard platform REST API.
//
// Every service consumes a gateway.Gateway, so transport concerns (bearer
// tokens, request IDs, envelope decoding, error classification) are handled
// in one place and the services stay thin: build the path, pass the payload,
// decode the typed result.
//
// # Services
//
//   - AuthService: register, login, token validation. Implements
//     session.Authenticator[User], so it plugs directly into a session store.
//   - UsersService: profile read/update for the authenticated user.
//   - CoursesService: course catalog CRUD and lesson listing.
//   - JobsService: job board CRUD, applications.
//   - MessagesService: direct messaging between users.
//   - ProgressService: lesson completion tracking.
//
// # Usage Example
//
//	ring := keyring.NewMemory()
//	gw := gateway.MustNew(gateway.Config{BaseURL: "https://api.example.com/api"},
//		gateway.WithCredentials(ring),
//	)
//
//	auth := api.NewAuthService(gw)
//	store, err := session.New[api.User](auth, ring)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	if store.Login(ctx, "alice@example.com", "secret123") {
//		courses, err := api.NewCoursesService(gw).List(ctx)
//		// ...
//	}
//
// All errors returned by the services flow through the gateway's
// classification: use gateway.Classify to branch on the outcome, or
// gateway.Message to render a user-facing string.
package api
