package handlers

import (
	"net/http"
)

// GetDashboardMetricsHandler godoc
// @Summary Dashboard metrics for admin view
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics/dashboard [get]
func (s *Server) GetDashboardMetricsHandler(w http.ResponseWriter, r *http.Request) {
	m, err := s.metricsRepo.GetDashboardMetrics(r.Context())
	if err != nil {
		s.log.WithError(err).Warn("failed to fetch metrics")
		http.Error(w, "failed to fetch metrics", http.StatusInternalServerError)
		return
	}
	s.respondJSON(w, http.StatusOK, m)
}
