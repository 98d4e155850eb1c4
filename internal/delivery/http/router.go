package http

import (
	"net/http"

	"hospital-management-api/internal/delivery/http/handler"
	"hospital-management-api/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router               *mux.Router
	authHandler          *handler.AuthHandler
	userHandler          *handler.UserHandler
	departmentHandler    *handler.DepartmentHandler
	doctorHandler        *handler.DoctorHandler
	patientHandler       *handler.PatientHandler
	appointmentHandler   *handler.AppointmentHandler
	medicalRecordHandler *handler.MedicalRecordHandler
	billingHandler       *handler.BillingHandler
	exportHandler        *handler.ExportHandler
	auditLogHandler      *handler.AuditLogHandler
	authMiddleware       *middleware.AuthMiddleware
	corsMiddleware       *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	userHandler *handler.UserHandler,
	departmentHandler *handler.DepartmentHandler,
	doctorHandler *handler.DoctorHandler,
	patientHandler *handler.PatientHandler,
	appointmentHandler *handler.AppointmentHandler,
	medicalRecordHandler *handler.MedicalRecordHandler,
	billingHandler *handler.BillingHandler,
	exportHandler *handler.ExportHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:               mux.NewRouter(),
		authHandler:          authHandler,
		userHandler:          userHandler,
		departmentHandler:    departmentHandler,
		doctorHandler:        doctorHandler,
		patientHandler:       patientHandler,
		appointmentHandler:   appointmentHandler,
		medicalRecordHandler: medicalRecordHandler,
		billingHandler:       billingHandler,
		exportHandler:        exportHandler,
		auditLogHandler:      auditLogHandler,
		authMiddleware:       authMiddleware,
		corsMiddleware:       corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.Me).Methods(http.MethodGet)
	authProtected.HandleFunc("/change-password", r.authHandler.ChangePassword).Methods(http.MethodPost)

	// Doctor registration is reserved for admins
	adminAuth := api.PathPrefix("/auth").Subrouter()
	adminAuth.Use(r.authMiddleware.Authenticate)
	adminAuth.Use(middleware.RequireAdmin)
	adminAuth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)

	// User management (admin)
	users := api.PathPrefix("/users").Subrouter()
	users.Use(r.authMiddleware.Authenticate)
	users.Use(middleware.RequireAdmin)
	users.HandleFunc("", r.userHandler.List).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.Get).Methods(http.MethodGet)
	users.HandleFunc("/{id}", r.userHandler.Update).Methods(http.MethodPut)

	// Departments: reads for any authenticated user, writes for admins
	departments := api.PathPrefix("/departments").Subrouter()
	departments.Use(r.authMiddleware.Authenticate)
	departments.HandleFunc("", r.departmentHandler.List).Methods(http.MethodGet)
	departments.HandleFunc("/{id}", r.departmentHandler.Get).Methods(http.MethodGet)

	departmentAdmin := api.PathPrefix("/departments").Subrouter()
	departmentAdmin.Use(r.authMiddleware.Authenticate)
	departmentAdmin.Use(middleware.RequireAdmin)
	departmentAdmin.HandleFunc("", r.departmentHandler.Create).Methods(http.MethodPost)
	departmentAdmin.HandleFunc("/{id}", r.departmentHandler.Update).Methods(http.MethodPut)
	departmentAdmin.HandleFunc("/{id}", r.departmentHandler.Delete).Methods(http.MethodDelete)

	// Doctor directory
	doctors := api.PathPrefix("/doctors").Subrouter()
	doctors.Use(r.authMiddleware.Authenticate)
	doctors.HandleFunc("", r.doctorHandler.List).Methods(http.MethodGet)
	doctors.HandleFunc("/me", r.doctorHandler.Me).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.Get).Methods(http.MethodGet)
	doctors.HandleFunc("/{id}", r.doctorHandler.Update).Methods(http.MethodPut)
	doctors.HandleFunc("/{id}/availability", r.doctorHandler.Availability).Methods(http.MethodGet)

	// Patient roster is staff-only; patients reach their own profile
	// through /patients/me and /patients/{id}
	patientRoster := api.PathPrefix("/patients").Subrouter()
	patientRoster.Use(r.authMiddleware.Authenticate)
	patientRoster.Use(middleware.RequireFrontDesk)
	patientRoster.HandleFunc("", r.patientHandler.List).Methods(http.MethodGet)

	patients := api.PathPrefix("/patients").Subrouter()
	patients.Use(r.authMiddleware.Authenticate)
	patients.HandleFunc("/me", r.patientHandler.Me).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Get).Methods(http.MethodGet)
	patients.HandleFunc("/{id}", r.patientHandler.Update).Methods(http.MethodPut)
	patients.HandleFunc("/{id}/medical-records", r.medicalRecordHandler.ListByPatient).Methods(http.MethodGet)

	// Appointments: visibility is scoped per role inside the usecase
	appointments := api.PathPrefix("/appointments").Subrouter()
	appointments.Use(r.authMiddleware.Authenticate)
	appointments.HandleFunc("", r.appointmentHandler.Create).Methods(http.MethodPost)
	appointments.HandleFunc("", r.appointmentHandler.List).Methods(http.MethodGet)
	appointments.HandleFunc("/my", r.appointmentHandler.My).Methods(http.MethodGet)
	appointments.HandleFunc("/today", r.appointmentHandler.Today).Methods(http.MethodGet)
	appointments.HandleFunc("/calendar", r.appointmentHandler.Calendar).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	appointments.HandleFunc("/{id}", r.appointmentHandler.Update).Methods(http.MethodPut)
	appointments.HandleFunc("/{id}/status", r.appointmentHandler.UpdateStatus).Methods(http.MethodPatch)
	appointments.HandleFunc("/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)

	// Medical records: writes restricted to clinical staff
	records := api.PathPrefix("/medical-records").Subrouter()
	records.Use(r.authMiddleware.Authenticate)
	records.HandleFunc("/{id}", r.medicalRecordHandler.Get).Methods(http.MethodGet)

	recordsClinical := api.PathPrefix("/medical-records").Subrouter()
	recordsClinical.Use(r.authMiddleware.Authenticate)
	recordsClinical.Use(middleware.RequireClinicalStaff)
	recordsClinical.HandleFunc("", r.medicalRecordHandler.Create).Methods(http.MethodPost)
	recordsClinical.HandleFunc("/{id}", r.medicalRecordHandler.Update).Methods(http.MethodPut)

	recordsAdmin := api.PathPrefix("/medical-records").Subrouter()
	recordsAdmin.Use(r.authMiddleware.Authenticate)
	recordsAdmin.Use(middleware.RequireAdmin)
	recordsAdmin.HandleFunc("/{id}", r.medicalRecordHandler.Delete).Methods(http.MethodDelete)

	// Billing: staff manage invoices, patients can read their own.
	// Registered before the read routes so /summary and /export are not
	// swallowed by the {id} matcher.
	billing := api.PathPrefix("/invoices").Subrouter()
	billing.Use(r.authMiddleware.Authenticate)
	billing.Use(middleware.RequireBillingStaff)
	billing.HandleFunc("", r.billingHandler.CreateInvoice).Methods(http.MethodPost)
	billing.HandleFunc("/summary", r.billingHandler.Summary).Methods(http.MethodGet)
	billing.HandleFunc("/export", r.exportHandler.ExportInvoices).Methods(http.MethodGet)
	billing.HandleFunc("/{id}", r.billingHandler.UpdateInvoice).Methods(http.MethodPut)
	billing.HandleFunc("/{id}", r.billingHandler.DeleteInvoice).Methods(http.MethodDelete)
	billing.HandleFunc("/{id}/items", r.billingHandler.AddLineItem).Methods(http.MethodPost)
	billing.HandleFunc("/{id}/items/{itemId}", r.billingHandler.RemoveLineItem).Methods(http.MethodDelete)
	billing.HandleFunc("/{id}/payments", r.billingHandler.RecordPayment).Methods(http.MethodPost)

	invoices := api.PathPrefix("/invoices").Subrouter()
	invoices.Use(r.authMiddleware.Authenticate)
	invoices.HandleFunc("", r.billingHandler.ListInvoices).Methods(http.MethodGet)
	invoices.HandleFunc("/{id}", r.billingHandler.GetInvoice).Methods(http.MethodGet)

	// Audit trail (admin)
	audit := api.PathPrefix("/audit-logs").Subrouter()
	audit.Use(r.authMiddleware.Authenticate)
	audit.Use(middleware.RequireAdmin)
	audit.HandleFunc("", r.auditLogHandler.List).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
