package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ecetopal/familytree-backend/internal/api/handlers"
	"github.com/ecetopal/familytree-backend/internal/auth"
	"github.com/ecetopal/familytree-backend/internal/config"
	"github.com/ecetopal/familytree-backend/internal/middleware"
	"github.com/ecetopal/familytree-backend/internal/services"
)

type RouterDeps struct {
	Cfg       config.Config
	TM        *auth.TokenManager
	UserSvc   *services.UserService
	TreeSvc   *services.TreeService
	MemberSvc *services.MemberService
	MarrySvc  *services.MarriageService
	RecordSvc *services.RecordService
	GuestSvc  *services.GuestService
}

func NewRouter(d RouterDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID, middleware.Recover, middleware.RateLimit(d.Cfg.RateRPS), middleware.HTTPMetrics)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))

	// health & metrics
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) { _, _ = w.Write([]byte("ok")) })
	r.Handle("/metrics", promhttp.Handler())

	authH := handlers.NewAuthHandler(d.UserSvc, d.GuestSvc)
	treeH := handlers.NewTreeHandler(d.TreeSvc)
	memberH := handlers.NewMemberHandler(d.MemberSvc)
	marryH := handlers.NewMarriageHandler(d.MarrySvc)
	recordH := handlers.NewRecordHandler(d.RecordSvc)
	guestH := handlers.NewGuestHandler(d.GuestSvc)

	authMW := middleware.NewAuthMiddleware(d.TM)

	r.Route("/api/v1", func(r chi.Router) {
		// ---------- public ----------
		r.Post("/auth/register", authH.Register)
		r.Post("/auth/login", authH.Login)
		r.Post("/auth/refresh", authH.Refresh)
		r.Post("/auth/guest", authH.Guest)

		// ---------- authenticated ----------
		r.Group(func(r chi.Router) {
			r.Use(authMW.Auth)

			// owner + bound guest; fine-grained policy lives in the services
			r.Get("/family-trees/{treeID}", treeH.Get)
			r.Get("/family-trees/{treeID}/members", memberH.ListByTree)
			r.Get("/family-trees/{treeID}/marriages", marryH.ListByTree)
			r.Get("/family-trees/{treeID}/births", recordH.ListBirths)
			r.Get("/members/{memberID}", memberH.Get)
			r.Put("/members/{memberID}", memberH.Update)
			r.Get("/members/{memberID}/achievements", recordH.ListAchievements)
			r.Post("/members/{memberID}/achievements", recordH.CreateAchievement)
			r.Put("/achievements/{achievementID}", recordH.UpdateAchievement)
			r.Delete("/achievements/{achievementID}", recordH.DeleteAchievement)

			// owner-only surfaces; RequireOwner answers 403 before any lookup
			r.Group(func(r chi.Router) {
				r.Use(middleware.RequireOwner)
				r.Get("/family-trees", treeH.List)
				r.Post("/family-trees", treeH.Create)
			})

			// tree-scoped owner actions; the guard answers 404 for foreign
			// trees and 403 for bound guests
			r.Put("/family-trees/{treeID}", treeH.Update)
			r.Delete("/family-trees/{treeID}", treeH.Delete)
			r.Post("/family-trees/{treeID}/members", memberH.Create)
			r.Delete("/members/{memberID}", memberH.Delete)
			r.Post("/family-trees/{treeID}/marriages", marryH.Create)
			r.Patch("/marriages/{marriageID}/divorce", marryH.Divorce)
			r.Post("/family-trees/{treeID}/births", recordH.CreateBirth)
			r.Post("/members/{memberID}/passing", recordH.CreatePassing)
			r.Post("/family-trees/{treeID}/members/{memberID}/access-code", guestH.IssueCode)
			r.Get("/family-trees/{treeID}/change-log", treeH.ChangeLog)
		})
	})

	return r
}
