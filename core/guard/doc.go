// Package guard defines the contract between the session store and the
// routing layer: protected views are withheld while the auth check is
// pending, unauthenticated visitors are redirected to the public entry
// point, and everyone else passes through.
//
//	switch guard.Resolve(store) {
//	case guard.DecisionPending:
//		// render loading placeholder
//	case guard.DecisionRedirect:
//		// navigate to the public entry point
//	case guard.DecisionAllow:
//		// render the protected view
//	}
package guard
