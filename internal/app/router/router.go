// Package router wires the HTTP routes to their handlers.
package router

import (
	"github.com/gin-gonic/gin"

	authentity "petverse_backend/internal/feature/auth/domain/entity"
	authhandler "petverse_backend/internal/feature/auth/transport/handler"
	carehandler "petverse_backend/internal/feature/petcare/transport/handler"
	recordshandler "petverse_backend/internal/feature/petrecords/transport/handler"
	pethandler "petverse_backend/internal/feature/pets/transport/handler"
	posthandler "petverse_backend/internal/feature/posts/transport/handler"
	usershandler "petverse_backend/internal/feature/users/transport/handler"
	platformhandler "petverse_backend/internal/platform/http/handler"
	"petverse_backend/internal/platform/token"
)

// Handlers bundles every feature handler the router mounts.
type Handlers struct {
	Auth    *authhandler.AuthHandler
	Pets    *pethandler.PetHandler
	Records *recordshandler.RecordsHandler
	Posts   *posthandler.PostHandler
	Profile *usershandler.ProfileHandler
	Care    *carehandler.PetcareHandler
}

// NewRouter builds the gin engine with public routes, the authenticated
// group and the vet-only medical visit mutations.
func NewRouter(h Handlers, tokens token.Verifier, users token.IdentityResolver) *gin.Engine {
	r := gin.Default()

	// Public
	r.GET("/healthz", platformhandler.Health)
	r.HEAD("/healthz", platformhandler.Health)

	r.POST("/auth/register", h.Auth.Register)
	r.POST("/auth/login", h.Auth.Login)
	r.POST("/auth/google/callback", h.Auth.GoogleCallback)

	// The feed reads are public; post and comment listings included.
	r.GET("/posts", h.Posts.List)
	r.GET("/posts/:id", h.Posts.Get)
	r.GET("/posts/:id/likes", h.Posts.ListLikes)
	r.GET("/posts/:id/comments", h.Posts.ListComments)

	// Authenticated
	auth := r.Group("/")
	auth.Use(token.AuthRequired(tokens, users))
	{
		auth.GET("/users/me", h.Profile.Me)
		auth.GET("/users/me/settings", h.Profile.Settings)
		auth.PUT("/users/me/settings", h.Profile.UpdateSettings)
		auth.GET("/users/me/address", h.Profile.Address)
		auth.PUT("/users/me/address", h.Profile.UpdateAddress)

		auth.GET("/pets", h.Pets.List)
		auth.POST("/pets", h.Pets.Create)
		auth.GET("/pets/:id", h.Pets.Get)
		auth.PUT("/pets/:id", h.Pets.Update)
		auth.DELETE("/pets/:id", h.Pets.Delete)

		auth.GET("/pets/:id/health-records", h.Records.ListHealthRecords)
		auth.POST("/pets/:id/health-records", h.Records.CreateHealthRecord)
		auth.PUT("/pets/:id/health-records/:recordID", h.Records.UpdateHealthRecord)
		auth.DELETE("/pets/:id/health-records/:recordID", h.Records.DeleteHealthRecord)

		auth.GET("/pets/:id/vaccines", h.Records.ListVaccines)
		auth.POST("/pets/:id/vaccines", h.Records.CreateVaccine)
		auth.PUT("/pets/:id/vaccines/:recordID", h.Records.UpdateVaccine)
		auth.DELETE("/pets/:id/vaccines/:recordID", h.Records.DeleteVaccine)

		auth.GET("/pets/:id/medications", h.Records.ListMedications)
		auth.POST("/pets/:id/medications", h.Records.CreateMedication)
		auth.PUT("/pets/:id/medications/:recordID", h.Records.UpdateMedication)
		auth.DELETE("/pets/:id/medications/:recordID", h.Records.DeleteMedication)

		auth.GET("/pets/:id/weights", h.Records.ListWeights)
		auth.POST("/pets/:id/weights", h.Records.CreateWeight)
		auth.PUT("/pets/:id/weights/:recordID", h.Records.UpdateWeight)
		auth.DELETE("/pets/:id/weights/:recordID", h.Records.DeleteWeight)

		auth.GET("/pets/:id/medical-visits", h.Records.ListMedicalVisits)

		auth.POST("/pets/:id/vaccine-card/scans", h.Care.ScanVaccineCard)
		auth.GET("/pets/:id/vaccine-card/scans", h.Care.ListScans)
		auth.POST("/pets/:id/recommendations", h.Care.Recommend)
		auth.GET("/pets/:id/recommendations", h.Care.ListRecommendations)

		auth.POST("/posts", h.Posts.Create)
		auth.PUT("/posts/:id", h.Posts.Update)
		auth.DELETE("/posts/:id", h.Posts.Delete)
		auth.POST("/posts/:id/likes", h.Posts.Like)
		auth.DELETE("/posts/:id/likes", h.Posts.Unlike)
		auth.POST("/posts/:id/comments", h.Posts.CreateComment)
		auth.DELETE("/posts/:id/comments/:commentID", h.Posts.DeleteComment)
	}

	// Medical visit mutations require the vet role on top of auth.
	vet := r.Group("/")
	vet.Use(token.AuthRequired(tokens, users), token.RequireRole(authentity.RoleVet))
	{
		vet.POST("/pets/:id/medical-visits", h.Records.CreateMedicalVisit)
		vet.PUT("/pets/:id/medical-visits/:recordID", h.Records.UpdateMedicalVisit)
		vet.DELETE("/pets/:id/medical-visits/:recordID", h.Records.DeleteMedicalVisit)
	}

	return r
}
