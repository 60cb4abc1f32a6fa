package server

import (
	"net/http"
)

func (s *Server) OfferingsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, s.services.Entitlements.Offerings())
	}
}

type purchaseRequest struct {
	PackageID string `json:"package_id"`
}

func (s *Server) PurchaseHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req purchaseRequest
		if !decodeJSON(w, r, &req) {
			return
		}

		info, err := s.services.Entitlements.Purchase(r.Context(), req.PackageID, userIDFromContext(r.Context()))
		if err != nil {
			s.respondServiceError(w, err)
			return
		}

		s.logger.Info().Str("package", req.PackageID).Msg("purchase completed")
		writeJSON(w, http.StatusOK, info)
	}
}

func (s *Server) RestorePurchasesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := s.services.Entitlements.Restore(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, info)
	}
}

func (s *Server) CustomerInfoHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		info, err := s.services.Entitlements.CustomerInfo(r.Context())
		if err != nil {
			s.respondServiceError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, map[string]interface{}{"customer_info": info})
	}
}
