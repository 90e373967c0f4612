// Package gateway centralizes outbound HTTP concerns for the platform API:
// credential attachment, failure classification, and global session teardown
// on authentication rejection.
//
// Every collaborator sends requests through one Gateway so the logic never
// repeats per page. A single request moves through exactly one terminal
// state:
//
//	Pending → Success | NetworkUnreachable | Unauthorized | ApplicationError
//
// There is no automatic retry; retrying is a caller-level decision.
//
// # Classification
//
// The result of every call maps onto the Outcome taxonomy:
//
//   - no response at all (refused, DNS, timeout) → ErrNetworkUnreachable
//   - HTTP 401 → ErrUnauthorized, stored credentials cleared, the
//     session-invalidated callback fires
//   - any other non-2xx, or a 2xx carrying {"success": false} → *Error with
//     the server-supplied message (or a generic fallback)
//   - 2xx success → envelope data decoded into the caller's value
//
// Use Classify to branch on the taxonomy, or errors.Is / errors.As directly:
//
//	err := gw.Get(ctx, "/courses", &courses)
//	switch gateway.Classify(err) {
//	case gateway.OutcomeNetworkUnreachable:
//		// show retry banner, session stays intact
//	case gateway.OutcomeApplicationError:
//		// show gateway.Message(err, "Something went wrong.")
//	case gateway.OutcomeUnauthorized:
//		// nothing to do: teardown already happened centrally
//	}
//
// # Setup
//
//	gw, err := gateway.New(cfg,
//		gateway.WithCredentials(ring),
//		gateway.WithOnUnauthorized(func(ctx context.Context) {
//			store.Invalidate(ctx) // host wires navigation from here
//		}),
//	)
//
// The bearer token is read from the keyring at call time on every request.
// The gateway never caches credentials.
package gateway
