package gateway

import (
	"github.com/gin-contrib/requestid"
	"github.com/gin-gonic/gin"

	"github.com/usv-events/client-go/internal/client"
	"github.com/usv-events/client-go/internal/config"
	"github.com/usv-events/client-go/internal/dashboard"
	v1 "github.com/usv-events/client-go/internal/gateway/handler/v1"
	"github.com/usv-events/client-go/internal/gateway/middleware"
	"github.com/usv-events/client-go/internal/session"
)

// Server is the local HTTP surface the browser UI talks to. It owns no
// business rules: every endpoint delegates to a dashboard controller or
// the session manager, which in turn call the remote USV Events API.
type Server struct {
	Config *config.AppConfig
	Router *gin.Engine
}

func NewServer(conf *config.AppConfig, api *client.Client, sessions *session.Manager, store *session.Store) *Server {
	gin.SetMode(conf.Gin.Mode)
	engine := gin.New()

	s := &Server{
		Config: conf,
		Router: engine,
	}

	s.MountMiddlewares()

	router := dashboard.NewRouter()
	sessions.Subscribe(router.Apply)
	router.Apply(sessions.Snapshot())

	registry := v1.NewRegistry(api, sessions, store,
		conf.Polling.UnreadInterval, conf.Polling.SearchDebounce)

	sessionHandler := v1.NewSessionHandler(sessions, api.Users(), router)
	studentHandler := v1.NewStudentHandler(registry)
	organizerHandler := v1.NewOrganizerHandler(registry)
	adminHandler := v1.NewAdminHandler(registry)
	notificationHandler := v1.NewNotificationHandler(registry)
	feedbackHandler := v1.NewFeedbackHandler(registry, api.Feedback())

	s.MountHandlers(sessionHandler, studentHandler, organizerHandler, adminHandler, notificationHandler, feedbackHandler)

	return s
}

func (s *Server) MountMiddlewares() {
	// Logger and Recovery are needed unless we use gin.Default().
	s.Router.Use(gin.Logger())
	s.Router.Use(gin.Recovery())
	s.Router.Use(requestid.New())
	s.Router.Use(middleware.ConfigCORS(s.Config.Gateway.AllowedCORSDomains))
}

func (s *Server) MountHandlers(
	sessionHandler *v1.SessionHandler,
	studentHandler *v1.StudentHandler,
	organizerHandler *v1.OrganizerHandler,
	adminHandler *v1.AdminHandler,
	notificationHandler *v1.NotificationHandler,
	feedbackHandler *v1.FeedbackHandler,
) {
	const basePath = "/api/v1"

	sessions := s.Router.Group(basePath)
	{
		sessions.GET("/session", sessionHandler.HandleState)
		sessions.POST("/session/login", sessionHandler.HandleLogin)
		sessions.POST("/session/register", sessionHandler.HandleRegister)
		sessions.POST("/session/logout", sessionHandler.HandleLogout)
		sessions.PATCH("/session/profile", sessionHandler.HandleUpdateProfile)
		sessions.GET("/session/interests", sessionHandler.HandleInterests)
		sessions.PUT("/session/interests", sessionHandler.HandleUpdateInterests)
	}

	student := s.Router.Group(basePath + "/student")
	{
		student.GET("/events", studentHandler.HandleEvents)
		student.POST("/events/:eventID/register", studentHandler.HandleRegister)
		student.DELETE("/events/:eventID/register", studentHandler.HandleCancel)
		student.POST("/events/:eventID/favorite", studentHandler.HandleToggleFavorite)
		student.POST("/feedback", feedbackHandler.HandleSubmit)
		student.GET("/feedback", feedbackHandler.HandleMine)
	}

	organizer := s.Router.Group(basePath + "/organizer")
	{
		organizer.GET("/events", organizerHandler.HandleMyEvents)
		organizer.POST("/events", organizerHandler.HandleSaveEvent)
		organizer.POST("/events/:eventID/submit", organizerHandler.HandleSubmit)
		organizer.DELETE("/events/:eventID", organizerHandler.HandleDelete)
		organizer.GET("/events/:eventID/participants", organizerHandler.HandleParticipants)
		organizer.POST("/events/:eventID/check-in", organizerHandler.HandleCheckIn)
		organizer.GET("/events/:eventID/materials", organizerHandler.HandleMaterials)
		organizer.GET("/events/:eventID/feedback", feedbackHandler.HandleForEvent)
		organizer.GET("/events/:eventID/feedback/stats", feedbackHandler.HandleStats)
		organizer.POST("/materials", organizerHandler.HandleUploadMaterial)
		organizer.POST("/materials/:materialID/download-link", organizerHandler.HandleDownloadLink)
		organizer.GET("/draft", organizerHandler.HandleLoadDraft)
		organizer.PUT("/draft", organizerHandler.HandleSaveDraft)
		organizer.DELETE("/draft", organizerHandler.HandleDiscardDraft)
	}

	admin := s.Router.Group(basePath + "/admin")
	{
		admin.GET("/events/pending", adminHandler.HandlePendingEvents)
		admin.POST("/events/:eventID/approve", adminHandler.HandleApprove)
		admin.POST("/events/:eventID/reject", adminHandler.HandleReject)
		admin.GET("/users", adminHandler.HandleUsers)
		admin.PATCH("/users/:userID/role", adminHandler.HandleUpdateRole)
		admin.GET("/faculties", adminHandler.HandleFaculties)
		admin.POST("/faculties", adminHandler.HandleSaveFaculty)
		admin.PATCH("/faculties/:facultyID", adminHandler.HandleSaveFaculty)
		admin.DELETE("/faculties/:facultyID", adminHandler.HandleDeleteFaculty)
		admin.POST("/departments", adminHandler.HandleCreateDepartment)
	}

	notifications := s.Router.Group(basePath + "/notifications")
	{
		notifications.GET("", notificationHandler.HandleList)
		notifications.GET("/unread-count", notificationHandler.HandleUnreadCount)
		notifications.POST("/:notificationID/read", notificationHandler.HandleMarkRead)
		notifications.POST("/read-all", notificationHandler.HandleMarkAllRead)
	}

	s.Router.GET("/", v1.HandleHealthcheck)
}
