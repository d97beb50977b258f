package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// NewRouter wires every endpoint onto a gorilla router. The caller is
// responsible for wrapping it with CORS and request logging.
func NewRouter(staffing StaffingService, admin AdminService, tickets TicketService) *mux.Router {
	r := mux.NewRouter()
	r.NotFoundHandler = NotFoundHandler()
	r.MethodNotAllowedHandler = MethodNotAllowedHandler()

	r.HandleFunc("/health", HealthHandler).Methods(http.MethodGet)

	r.HandleFunc("/staffing/attractions/{id}/assignments", HandleAssignToAttraction(staffing)).Methods(http.MethodPost)
	r.HandleFunc("/staffing/attractions/{id}/minimum-staffing", HandleMinimumStaffing(staffing)).Methods(http.MethodGet)
	r.HandleFunc("/staffing/cafeterias/{id}/cooks", HandleAssignCook(staffing)).Methods(http.MethodPost)
	r.HandleFunc("/staffing/service-places/{id}/cashiers", HandleAssignCashier(staffing)).Methods(http.MethodPost)
	r.HandleFunc("/staffing/general-service", HandleAssignGeneralService(staffing)).Methods(http.MethodPost)
	r.HandleFunc("/staffing/assignments/{employeeID}", HandleGetAssignment(staffing)).Methods(http.MethodGet)
	r.HandleFunc("/staffing/assignments/{employeeID}", HandleReleaseAssignment(staffing)).Methods(http.MethodDelete)
	r.HandleFunc("/staffing/roster", HandleShiftRoster(staffing)).Methods(http.MethodGet)

	r.HandleFunc("/admin/employees", HandleAdminEmployees(admin)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/admin/employees/{id}", HandleAdminEmployee(admin)).Methods(http.MethodPut, http.MethodDelete)
	r.HandleFunc("/admin/attractions", HandleAdminAttractions(admin)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/admin/attractions/{id}", HandleAdminAttraction(admin)).Methods(http.MethodGet, http.MethodDelete)
	r.HandleFunc("/admin/attractions/{id}/tier", HandleChangeTier(admin)).Methods(http.MethodPut)
	r.HandleFunc("/admin/attractions/{id}/season", HandleSetSeason(admin)).Methods(http.MethodPut)
	r.HandleFunc("/admin/attractions/{id}/maintenance", HandleScheduleMaintenance(admin)).Methods(http.MethodPost)
	r.HandleFunc("/admin/attractions/{id}/availability", HandleAttractionAvailability(admin)).Methods(http.MethodGet)
	r.HandleFunc("/admin/service-places", HandleAdminServicePlaces(admin)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/admin/service-places/{id}", HandleAdminServicePlace(admin)).Methods(http.MethodDelete)
	r.HandleFunc("/admin/shows", HandleAdminShows(admin)).Methods(http.MethodGet, http.MethodPost)
	r.HandleFunc("/admin/shows/{id}", HandleAdminShow(admin)).Methods(http.MethodDelete)
	r.HandleFunc("/admin/shows/{id}/performances", HandlePerformances(admin)).Methods(http.MethodPost, http.MethodDelete)
	r.HandleFunc("/admin/shows/{id}/availability", HandleShowAvailability(admin)).Methods(http.MethodGet)

	r.HandleFunc("/tickets/basic", HandleSellBasic(tickets)).Methods(http.MethodPost)
	r.HandleFunc("/tickets/seasonal", HandleSellSeasonal(tickets)).Methods(http.MethodPost)
	r.HandleFunc("/tickets/single", HandleSellSingle(tickets)).Methods(http.MethodPost)
	r.HandleFunc("/tickets/{id}", HandleGetTicket(tickets)).Methods(http.MethodGet)
	r.HandleFunc("/tickets/{id}/use", HandleUseTicket(tickets)).Methods(http.MethodPost)
	r.HandleFunc("/tickets/{id}/access", HandleCheckAccess(tickets)).Methods(http.MethodGet)
	r.HandleFunc("/tickets/{id}/fastpasses", HandleIssueFastPass(tickets)).Methods(http.MethodPost)
	r.HandleFunc("/fastpasses/{id}", HandleGetFastPass(tickets)).Methods(http.MethodGet)
	r.HandleFunc("/fastpasses/{id}/use", HandleUseFastPass(tickets)).Methods(http.MethodPost)

	return r
}
