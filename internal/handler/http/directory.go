package http

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/customer"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/employee"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/domain/vendor"
	"github.com/GlobalCloudSystemrepository/vigilant-payroll-nexus-sub000/internal/handler/http/response"
)

// DirectoryHandler serves the master-data routes: employees, customers,
// vendors and vendor payments.
type DirectoryHandler interface {
	CreateEmployee(w http.ResponseWriter, r *http.Request)
	GetEmployee(w http.ResponseWriter, r *http.Request)
	ListEmployees(w http.ResponseWriter, r *http.Request)

	CreateCustomer(w http.ResponseWriter, r *http.Request)
	GetCustomer(w http.ResponseWriter, r *http.Request)
	ListCustomers(w http.ResponseWriter, r *http.Request)

	CreateVendor(w http.ResponseWriter, r *http.Request)
	GetVendor(w http.ResponseWriter, r *http.Request)
	ListVendors(w http.ResponseWriter, r *http.Request)
	ListVendorPayments(w http.ResponseWriter, r *http.Request)
}

type directoryHandlerImpl struct {
	employeeService employee.EmployeeService
	customerService customer.CustomerService
	vendorService   vendor.VendorService
}

func NewDirectoryHandler(
	employeeService employee.EmployeeService,
	customerService customer.CustomerService,
	vendorService vendor.VendorService,
) DirectoryHandler {
	return &directoryHandlerImpl{
		employeeService: employeeService,
		customerService: customerService,
		vendorService:   vendorService,
	}
}

// CreateEmployee implements DirectoryHandler.
func (h *directoryHandlerImpl) CreateEmployee(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.employeeService.CreateEmployee(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Employee created", result)
}

// GetEmployee implements DirectoryHandler.
func (h *directoryHandlerImpl) GetEmployee(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.GetEmployee(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListEmployees implements DirectoryHandler.
func (h *directoryHandlerImpl) ListEmployees(w http.ResponseWriter, r *http.Request) {
	result, err := h.employeeService.ListEmployees(r.Context(), queryPtr(r.URL.Query().Get("status")))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateCustomer implements DirectoryHandler.
func (h *directoryHandlerImpl) CreateCustomer(w http.ResponseWriter, r *http.Request) {
	var req customer.CreateCustomerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.customerService.CreateCustomer(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Customer created", result)
}

// GetCustomer implements DirectoryHandler.
func (h *directoryHandlerImpl) GetCustomer(w http.ResponseWriter, r *http.Request) {
	result, err := h.customerService.GetCustomer(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListCustomers implements DirectoryHandler.
func (h *directoryHandlerImpl) ListCustomers(w http.ResponseWriter, r *http.Request) {
	result, err := h.customerService.ListCustomers(r.Context(), queryPtr(r.URL.Query().Get("status")))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateVendor implements DirectoryHandler.
func (h *directoryHandlerImpl) CreateVendor(w http.ResponseWriter, r *http.Request) {
	var req vendor.CreateVendorRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.vendorService.CreateVendor(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Vendor created", result)
}

// GetVendor implements DirectoryHandler.
func (h *directoryHandlerImpl) GetVendor(w http.ResponseWriter, r *http.Request) {
	result, err := h.vendorService.GetVendor(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListVendors implements DirectoryHandler.
func (h *directoryHandlerImpl) ListVendors(w http.ResponseWriter, r *http.Request) {
	result, err := h.vendorService.ListVendors(r.Context(), queryPtr(r.URL.Query().Get("status")))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ListVendorPayments implements DirectoryHandler.
func (h *directoryHandlerImpl) ListVendorPayments(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	result, err := h.vendorService.ListPayments(r.Context(), vendor.PaymentFilter{
		StartDate: queryPtr(q.Get("start_date")),
		EndDate:   queryPtr(q.Get("end_date")),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
