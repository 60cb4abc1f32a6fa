package server

// API route paths.
const (
	RouteHealth = "/healthz"

	RouteAuthSignUp  = "/api/v1/auth/signup"
	RouteAuthSignIn  = "/api/v1/auth/signin"
	RouteAuthSignOut = "/api/v1/auth/signout"
	RouteAuthMe      = "/api/v1/auth/me"

	RouteProfile = "/api/v1/profiles/{id}"

	RouteDemoStats = "/api/v1/demo/stats"
	RouteDemoReset = "/api/v1/demo/reset"

	RouteWisdom     = "/api/v1/wisdom"
	RouteWisdomVote = "/api/v1/wisdom/{id}/vote"

	RouteOfferings        = "/api/v1/offerings"
	RoutePurchases        = "/api/v1/purchases"
	RoutePurchasesRestore = "/api/v1/purchases/restore"
	RouteCustomerInfo     = "/api/v1/customer"

	RouteOneShot        = "/api/v1/oneshot"
	RouteOneShotHistory = "/api/v1/oneshot/history"
	RouteOneShotStats   = "/api/v1/oneshot/stats"

	RouteChat  = "/api/v1/chat"
	RouteChaos = "/api/v1/chaos"

	RouteGoals        = "/api/v1/goals"
	RouteGoal         = "/api/v1/goals/{id}"
	RouteGoalsSummary = "/api/v1/goals/summary"

	RouteVideos = "/api/v1/videos"
	RouteVideo  = "/api/v1/videos/{id}"
)
