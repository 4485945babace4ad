package routes

import (
	"net/http"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"foundation-backend/config"
	"foundation-backend/controllers"
	"foundation-backend/middleware"
	"foundation-backend/services"
	"foundation-backend/utils"
)

// Deps คือของที่ main (หรือเทสต์) เตรียมไว้ให้ router
type Deps struct {
	DB     *gorm.DB
	Config *config.Config
	Store  services.Storage
	Log    *zap.Logger
}

// App router + service ที่ main ต้องใช้ต่อ (เช่น cron ล้าง blacklist)
type App struct {
	Router    *gin.Engine
	Blacklist *services.BlacklistService
	Tokens    *services.TokenService
}

func corsConfig(origins []string) cors.Config {
	allowCredentials := true
	for _, origin := range origins {
		if origin == "*" {
			allowCredentials = false
			break
		}
	}
	return cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization", "X-Requested-With", middleware.RequestIDHeader},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition", middleware.RequestIDHeader},
		AllowCredentials: allowCredentials,
		MaxAge:           12 * time.Hour,
	}
}

// SetupRouter สร้าง service/controller ทั้งหมดแล้วผูก route
func SetupRouter(d Deps) *App {
	utils.RegisterValidators()
	cfg := d.Config
	db := d.DB

	// ---------------- services ----------------
	up := services.NewUploader(d.Store, cfg.Storage.MaxImageWidth, d.Log)
	tokens := services.NewTokenService(cfg.JWT.Secret, time.Duration(cfg.JWT.TTLHours)*time.Hour)
	blacklist := services.NewBlacklistService(db, cfg.JWT.Secret)
	printer := services.NewPrintService(cfg.Print.OrgName, cfg.Print.LogoURL)

	slides := services.NewSlideService(db, up)
	news := services.NewNewsService(db, up)
	pride := services.NewPrideService(db, up)
	programs := services.NewProgramService(db, up)
	staff := services.NewStaffService(db, up)
	teachers := services.NewTeacherService(db, up)
	partners := services.NewPartnerService(db, up)
	navbar := services.NewNavbarService(db)
	sidebar := services.NewSidebarService(db)
	settings := services.NewSettingsService(db)
	contacts := services.NewContactService(db)
	scholarships := services.NewScholarshipService(db)
	donations := services.NewDonationService(db, up)
	students := services.NewStudentService(db)
	access := services.NewTeacherAccessService(db, tokens, blacklist, students, time.Duration(cfg.Teacher.CodeTTLHours)*time.Hour)

	// ---------------- controllers ----------------
	public := &controllers.PublicController{
		Slides: slides, News: news, Programs: programs, Staff: staff, Teachers: teachers,
		Partners: partners, Pride: pride, Navbar: navbar, Settings: settings,
		Contacts: contacts, Scholarships: scholarships, Donations: donations, Students: students,
	}
	authCtl := controllers.NewAuthController(services.NewAuthService(db, tokens, blacklist), d.Log)
	adminCtl := controllers.NewAdminController(services.NewAdminService(db))
	dashboardCtl := controllers.NewDashboardController(services.NewDashboardService(db))
	settingsCtl := controllers.NewSettingsController(settings)

	slideCtl := controllers.NewSlideController(slides)
	staffCtl := controllers.NewStaffController(staff)
	partnerCtl := controllers.NewPartnerController(partners)
	navbarCtl := controllers.NewNavbarController(navbar)
	sidebarCtl := controllers.NewSidebarController(sidebar)
	newsCtl := controllers.NewNewsController(news)
	prideCtl := controllers.NewPrideController(pride)
	programCtl := controllers.NewProgramController(programs)
	teacherCtl := controllers.NewTeacherController(teachers, access, d.Log)
	contactCtl := controllers.NewContactController(contacts)
	scholarshipCtl := controllers.NewScholarshipController(scholarships, printer)
	donationCtl := controllers.NewDonationController(donations, printer)
	studentCtl := controllers.NewStudentController(students, printer)

	// ---------------- router ----------------
	if !cfg.IsDev() {
		gin.SetMode(gin.ReleaseMode)
	}
	r := gin.New()
	r.Use(gin.Recovery(), middleware.Logger(d.Log), middleware.Metrics())
	r.Use(cors.New(corsConfig(cfg.CorsOrigins())))

	if cfg.Storage.Driver == "local" {
		r.Static("/uploads", cfg.Storage.Dir)
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := r.Group("/api")

	pub := api.Group("/public")
	{
		pub.GET("/slides", public.ListSlides)
		pub.GET("/news", public.ListNews)
		pub.GET("/news/:id", public.GetNews)
		pub.GET("/programs", public.ListPrograms)
		pub.GET("/staff", public.StaffDirectory)
		pub.GET("/teachers", public.TeacherDirectory)
		pub.GET("/partners", public.ListPartners)
		pub.GET("/pride-topics", public.ListPrideTopics)
		pub.GET("/navbar", public.ListNavbar)
		pub.GET("/settings/:id", public.GetSetting)
		pub.GET("/statistics", public.Statistics)

		pub.POST("/contact-messages", public.SubmitContact)
		pub.POST("/scholarship-applications", public.SubmitScholarship)
		pub.POST("/donations", public.SubmitDonation)
		pub.POST("/students/register", public.RegisterStudent)
		pub.GET("/students/status", public.StudentStatus)
	}

	requireAdmin := middleware.RequireAuth(tokens, blacklist, services.RoleAdmin)
	requireTeacher := middleware.RequireAuth(tokens, blacklist, services.RoleTeacher)

	auth := api.Group("/auth")
	{
		auth.POST("/login", authCtl.Login)
		auth.POST("/logout", requireAdmin, authCtl.Logout)
		auth.GET("/session", requireAdmin, authCtl.Session)
	}

	teacher := api.Group("/teacher")
	{
		teacher.POST("/login", teacherCtl.Login)
		teacher.GET("/me", requireTeacher, teacherCtl.Me)
		teacher.POST("/logout", requireTeacher, teacherCtl.Logout)
	}

	admin := api.Group("/admin", requireAdmin)
	{
		admin.GET("/dashboard", dashboardCtl.Overview)

		admins := admin.Group("/admins")
		{
			admins.GET("", adminCtl.List)
			admins.POST("", adminCtl.Create)
			admins.DELETE("/:id", adminCtl.Delete)
		}

		admin.GET("/settings/:id", settingsCtl.Get)
		admin.PUT("/settings/:id", settingsCtl.Put)

		slidesG := admin.Group("/slides")
		crud(slidesG, slideCtl.CrudController, true)
		slidesG.POST("/:id/image", slideCtl.UploadImage)

		staffG := admin.Group("/staff")
		crud(staffG, staffCtl.CrudController, false)
		staffG.POST("/:id/image", staffCtl.UploadImage)

		teachersG := admin.Group("/teachers")
		crud(teachersG, teacherCtl.CrudController, false)
		teachersG.POST("/:id/image", teacherCtl.UploadImage)
		teachersG.POST("/:id/access-code", teacherCtl.IssueAccessCode)

		partnersG := admin.Group("/partners")
		crud(partnersG, partnerCtl.CrudController, true)
		partnersG.POST("/:id/image", partnerCtl.UploadImage)

		crud(admin.Group("/navbar"), navbarCtl.CrudController, true)
		crud(admin.Group("/sidebar"), sidebarCtl.CrudController, true)

		newsG := admin.Group("/news")
		{
			newsG.GET("", newsCtl.List)
			newsG.GET("/:id", newsCtl.Get)
			newsG.POST("", newsCtl.Create)
			newsG.PUT("/:id", newsCtl.Update)
			newsG.DELETE("/:id", newsCtl.Delete)
			newsG.POST("/:id/images", newsCtl.AddImages)
			newsG.DELETE("/:id/images/:imageId", newsCtl.DeleteImage)
		}

		prideG := admin.Group("/pride-topics")
		{
			prideG.GET("", prideCtl.List)
			prideG.GET("/:id", prideCtl.Get)
			prideG.POST("", prideCtl.Create)
			prideG.PUT("/:id", prideCtl.Update)
			prideG.DELETE("/:id", prideCtl.Delete)
			prideG.POST("/reorder", prideCtl.Reorder)
			prideG.POST("/:id/images", prideCtl.AddImages)
			prideG.DELETE("/:id/images/:imageId", prideCtl.DeleteImage)
		}

		programsG := admin.Group("/programs")
		{
			programsG.GET("", programCtl.List)
			programsG.POST("", programCtl.Upload)
			programsG.DELETE("/:id", programCtl.Delete)
			programsG.POST("/reorder", programCtl.Reorder)
			programsG.POST("/:id/image", programCtl.ReplaceImage)
		}

		messages := admin.Group("/contact-messages")
		{
			messages.GET("", contactCtl.List)
			messages.GET("/:id", contactCtl.Get)
			messages.PATCH("/:id/read", contactCtl.MarkRead)
			messages.DELETE("/:id", contactCtl.Delete)
		}

		scholarshipsG := admin.Group("/scholarship-applications")
		{
			// ? export ต้องอยู่ก่อน /:id
			scholarshipsG.GET("/export", scholarshipCtl.Export)
			scholarshipsG.GET("", scholarshipCtl.List)
			scholarshipsG.GET("/:id", scholarshipCtl.Get)
			scholarshipsG.PUT("/:id", scholarshipCtl.Update)
			scholarshipsG.PATCH("/:id/status", scholarshipCtl.ChangeStatus)
			scholarshipsG.GET("/:id/print", scholarshipCtl.PrintForm)
			scholarshipsG.DELETE("/:id", scholarshipCtl.Delete)
		}

		donationsG := admin.Group("/donations")
		{
			donationsG.GET("", donationCtl.List)
			donationsG.GET("/:id", donationCtl.Get)
			donationsG.PUT("/:id", donationCtl.Update)
			donationsG.PATCH("/:id/status", donationCtl.SetStatus)
			donationsG.GET("/:id/print", donationCtl.PrintReceipt)
			donationsG.DELETE("/:id", donationCtl.Delete)
		}

		studentsG := admin.Group("/students")
		{
			studentsG.GET("", studentCtl.List)
			studentsG.GET("/:id", studentCtl.Get)
			studentsG.PUT("/:id", studentCtl.Update)
			studentsG.PATCH("/:id/status", studentCtl.SetStatus)
			studentsG.GET("/:id/print", studentCtl.PrintForm)
			studentsG.DELETE("/:id", studentCtl.Delete)
		}
	}

	return &App{Router: r, Blacklist: blacklist, Tokens: tokens}
}

type crudRoutes interface {
	List(*gin.Context)
	Get(*gin.Context)
	Create(*gin.Context)
	Update(*gin.Context)
	Delete(*gin.Context)
	Reorder(*gin.Context)
}

// crud ผูก route มาตรฐานของโมดูลหลังบ้าน
func crud(g *gin.RouterGroup, h crudRoutes, reorder bool) {
	g.GET("", h.List)
	g.GET("/:id", h.Get)
	g.POST("", h.Create)
	g.PUT("/:id", h.Update)
	g.DELETE("/:id", h.Delete)
	if reorder {
		g.POST("/reorder", h.Reorder)
	}
}
