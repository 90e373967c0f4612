// Package session owns client-side authentication state: the current user,
// the bearer token, and the auth-check flag route guards consume. It is the
// single source of truth for "who is logged in"; every transition goes
// through its operations and no collaborator writes credentials directly.
//
// The store is generic over the application's user record:
//
//	store, err := session.New[api.User](authService, ring,
//		session.WithRestorePolicy(session.TrustStored),
//		session.WithOnInvalidate(func() {
//			nav.RedirectHome() // host-owned navigation
//		}),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// Boot: attempt restore, then let the route guard resolve.
//	store.Initialize(ctx)
//
//	// User-initiated authentication. Operations report success instead of
//	// returning errors; failures land in the state's Err field with a
//	// user-facing message.
//	if !store.Login(ctx, email, password) {
//		fmt.Println(store.State().Err)
//	}
//
// # Lifecycle
//
// The session is empty at process start. It is populated by a successful
// restore from durable storage, a successful login, or a successful
// register-then-login chain. It is destroyed by an explicit Logout or by
// Invalidate, the sink the gateway calls when any request receives HTTP 401.
//
// Two invariants hold at every observable instant:
//
//   - the user record and the token are both set or both absent
//   - AuthCheckComplete transitions false to true exactly once and never
//     reverts; re-initialization is not supported
//
// # Restore policies
//
// TrustStored (default) restores parseable stored credentials immediately;
// a stale token is then caught by the gateway on first use. ValidateStored
// confirms the token with the backend before restoring and discards storage
// when validation fails or the backend is unreachable.
//
// # Concurrency
//
// The store is safe for concurrent use. Initialize runs at most once;
// concurrent Initialize and Login are permitted and the last committed
// credentials win. In-flight requests are not cancelled by Logout; a late
// response is processed against whatever state exists when it arrives.
package session
