package main

import (
	"context"
	"log"
	"os"

	redisv9 "github.com/redis/go-redis/v9"

	"petverse_backend/internal/app/di"
	"petverse_backend/internal/app/router"
	authadapters "petverse_backend/internal/feature/auth/adapters"
	authhandler "petverse_backend/internal/feature/auth/transport/handler"
	authusecase "petverse_backend/internal/feature/auth/usecase"
	careadapters "petverse_backend/internal/feature/petcare/adapters"
	carehandler "petverse_backend/internal/feature/petcare/transport/handler"
	careusecase "petverse_backend/internal/feature/petcare/usecase"
	recordsadapters "petverse_backend/internal/feature/petrecords/adapters"
	recordshandler "petverse_backend/internal/feature/petrecords/transport/handler"
	recordsusecase "petverse_backend/internal/feature/petrecords/usecase"
	petadapters "petverse_backend/internal/feature/pets/adapters"
	pethandler "petverse_backend/internal/feature/pets/transport/handler"
	petusecase "petverse_backend/internal/feature/pets/usecase"
	postadapters "petverse_backend/internal/feature/posts/adapters"
	posthandler "petverse_backend/internal/feature/posts/transport/handler"
	postusecase "petverse_backend/internal/feature/posts/usecase"
	usersadapters "petverse_backend/internal/feature/users/adapters"
	usershandler "petverse_backend/internal/feature/users/transport/handler"
	usersusecase "petverse_backend/internal/feature/users/usecase"
	platformdb "petverse_backend/internal/platform/db"
	"petverse_backend/internal/platform/googleauth"
	"petverse_backend/internal/platform/password"
	platformredis "petverse_backend/internal/platform/redis"
	"petverse_backend/internal/platform/token"
)

func main() {
	ctx := context.Background()

	// db
	db := platformdb.OpenDB()

	// Redis
	var rdb *redisv9.Client
	if tmp, err := platformredis.NewRedisClient(); err != nil {
		log.Println("[WARN] Redis unavailable. Running without cache.")
		rdb = nil
	} else {
		rdb = tmp
		defer func() {
			if err := rdb.Close(); err != nil {
				log.Println("[ERROR] Failed to close Redis client:", err)
			}
		}()
	}

	// Platform
	secret := os.Getenv(token.EnvKeyJWTSecret)
	if secret == "" {
		log.Println("[WARN] JWT_SECRET is not set. Set a strong secret in production.")
	}
	tokens := token.NewService(secret, token.TTLFromEnv())
	google := googleauth.NewVerifier(os.Getenv(googleauth.EnvKeyGoogleClientID))
	hasher := password.NewBcryptHasher()

	// Repository
	userRepo := authadapters.NewUserPostgres(db)
	petRepo := petadapters.NewPetPostgres(db)
	recordsRepo := recordsadapters.NewRecordsPostgres(db)
	postRepo := di.NewPostRepository(rdb, db)
	reactionRepo := postadapters.NewPostPostgres(db)
	scanRepo := careadapters.NewScanPostgres(db)
	settingsRepo := usersadapters.NewProfilePostgres(db)

	// Usecase
	authUC := authusecase.NewAuthUsecase(userRepo, hasher, tokens, google)
	petsUC := petusecase.NewPetsUsecase(petRepo)
	recordsUC := recordsusecase.NewRecordsUsecase(petRepo, recordsRepo)
	postsUC := postusecase.NewPostsUsecase(postRepo, reactionRepo)
	profileUC := usersusecase.NewProfileUsecase(userRepo, petRepo, settingsRepo)
	careUC := careusecase.NewPetcareUsecase(petRepo, scanRepo, di.NewTextExtractor(ctx), di.NewCareAdvisor(ctx))

	// Handler
	handlers := router.Handlers{
		Auth:    authhandler.NewAuthHandler(authUC),
		Pets:    pethandler.NewPetHandler(petsUC),
		Records: recordshandler.NewRecordsHandler(recordsUC),
		Posts:   posthandler.NewPostHandler(postsUC),
		Profile: usershandler.NewProfileHandler(profileUC),
		Care:    carehandler.NewPetcareHandler(careUC),
	}

	r := router.NewRouter(handlers, tokens, authUC)

	if err := r.Run(":8080"); err != nil {
		log.Fatal(err)
	}
}
