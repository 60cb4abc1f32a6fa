package server

func (s *Server) initRoutes() {
	s.RegisterRouteFunc("GET "+RouteHealth, s.HealthHandler())

	// Identity
	s.RegisterRouteFunc("POST "+RouteAuthSignUp, ChainMiddleware(s.SignUpHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAuthSignIn, ChainMiddleware(s.SignInHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteAuthSignOut, ChainMiddleware(s.SignOutHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteAuthMe, ChainMiddleware(s.CurrentUserHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteProfile, ChainMiddleware(s.ProfileHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("PATCH "+RouteProfile, ChainMiddleware(s.UpdateProfileHandler(), s.ProtectedAPIMiddleware()...))

	// Demo utilities
	s.RegisterRouteFunc("GET "+RouteDemoStats, ChainMiddleware(s.DemoStatsHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteDemoReset, ChainMiddleware(s.DemoResetHandler(), s.APIMiddleware()...))

	// Wisdom ledger
	s.RegisterRouteFunc("GET "+RouteWisdom, ChainMiddleware(s.ListWisdomHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteWisdom, ChainMiddleware(s.AddWisdomHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteWisdomVote, ChainMiddleware(s.VoteWisdomHandler(), s.APIMiddleware()...))

	// Entitlements
	s.RegisterRouteFunc("GET "+RouteOfferings, ChainMiddleware(s.OfferingsHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RoutePurchases, ChainMiddleware(s.PurchaseHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("POST "+RoutePurchasesRestore, ChainMiddleware(s.RestorePurchasesHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteCustomerInfo, ChainMiddleware(s.CustomerInfoHandler(), s.APIMiddleware()...))

	// One-shot advice
	s.RegisterRouteFunc("POST "+RouteOneShot, ChainMiddleware(s.OneShotHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteOneShotHistory, ChainMiddleware(s.OneShotHistoryHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteOneShotStats, ChainMiddleware(s.OneShotStatsHandler(), s.APIMiddleware()...))

	// Conversational advisor and decision helper
	s.RegisterRouteFunc("POST "+RouteChat, ChainMiddleware(s.ChatHandler(), s.APIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteChaos, ChainMiddleware(s.ChaosHandler(), s.APIMiddleware()...))

	// Goal tracker
	s.RegisterRouteFunc("GET "+RouteGoals, ChainMiddleware(s.ListGoalsHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("POST "+RouteGoals, ChainMiddleware(s.AddGoalHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteGoalsSummary, ChainMiddleware(s.GoalsSummaryHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("PATCH "+RouteGoal, ChainMiddleware(s.UpdateGoalHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("DELETE "+RouteGoal, ChainMiddleware(s.DeleteGoalHandler(), s.ProtectedAPIMiddleware()...))

	// Vendor video generation
	s.RegisterRouteFunc("POST "+RouteVideos, ChainMiddleware(s.CreateVideoHandler(), s.ProtectedAPIMiddleware()...))
	s.RegisterRouteFunc("GET "+RouteVideo, ChainMiddleware(s.VideoStatusHandler(), s.ProtectedAPIMiddleware()...))
}
