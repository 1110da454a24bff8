package service

import "github.com/escalate-ai/router/internal/domain"

// ListModels advertises the single virtual model representing the router.
// Clients address all requests to this name; the front/back selection stays
// invisible to them.
func (s *Service) ListModels() domain.ModelsResponse {
	return domain.ModelsResponse{
		Object: "list",
		Data: []domain.Model{
			{
				ID:      s.config.RouterModelName,
				Object:  "model",
				Created: s.startedAt,
				OwnedBy: "escalate-router",
			},
		},
	}
}
