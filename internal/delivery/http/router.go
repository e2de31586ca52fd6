package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"concertify/internal/delivery/http/controllers"
	"concertify/internal/delivery/http/middleware"
	"concertify/internal/domain"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	artistController *controllers.ArtistController,
	concertController *controllers.ConcertController,
	favouriteController *controllers.FavouriteController,
	userController *controllers.UserController,
	verifier domain.TokenVerifier,
) *http.ServeMux {
	mux := http.NewServeMux()
	auth := middleware.RequireAuth(verifier)

	// Data API
	mux.HandleFunc("POST /api/data/uploadArtist", artistController.Upload)
	mux.HandleFunc("GET /api/data/artistData", artistController.List)
	mux.HandleFunc("GET /api/data/artistData/{artistID}", artistController.GetByID)
	mux.HandleFunc("GET /api/data/concertData", concertController.List)
	mux.HandleFunc("GET /api/data/concertData/{concertID}", concertController.GetByID)
	mux.HandleFunc("POST /api/data/addFavourite", auth(favouriteController.Add))
	mux.HandleFunc("DELETE /api/data/deleteFavourite", auth(favouriteController.Remove))
	mux.HandleFunc("GET /api/data/favourites", auth(favouriteController.List))

	// Users
	mux.HandleFunc("POST /api/users/signup", userController.SignUp)
	mux.HandleFunc("POST /api/users/login", userController.Login)
	mux.HandleFunc("POST /api/users/logout", userController.Logout)
	mux.HandleFunc("GET /api/users/cookieUser", auth(userController.CookieUser))

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
