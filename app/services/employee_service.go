package services

import (
	"errors"
	"sync"

	"BoucheriePos/app/data"
	"BoucheriePos/app/models"
)

// ErrInvalidPIN is returned when the employee id and PIN do not match.
var ErrInvalidPIN = errors.New("invalid employee or PIN")

// EmployeeService handles operator login and the active session. Identity
// only gates the UI; it is captured by value on each sale and otherwise
// stays out of the money handling.
type EmployeeService struct {
	mu        sync.Mutex
	employees []models.Employee
	current   *models.Employee
}

// NewEmployeeService creates a new employee service
func NewEmployeeService() *EmployeeService {
	return &EmployeeService{
		employees: data.Employees(),
	}
}

// GetEmployees returns the staff directory, without PINs.
func (s *EmployeeService) GetEmployees() []models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Employee, len(s.employees))
	for i, e := range s.employees {
		e.PIN = ""
		out[i] = e
	}
	return out
}

// Login authenticates an employee by id and PIN. The PIN is a plain
// shared secret compared for equality.
func (s *EmployeeService) Login(employeeID uint, pin string) (*models.Employee, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, e := range s.employees {
		if e.ID == employeeID && e.PIN == pin {
			emp := e
			s.current = &emp
			out := emp
			out.PIN = ""
			return &out, nil
		}
	}
	return nil, ErrInvalidPIN
}

// CurrentEmployee returns the logged-in operator, or nil.
func (s *EmployeeService) CurrentEmployee() *models.Employee {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.current == nil {
		return nil
	}
	out := *s.current
	out.PIN = ""
	return &out
}

// IsAuthenticated reports whether an operator is logged in.
func (s *EmployeeService) IsAuthenticated() bool {
	return s.CurrentEmployee() != nil
}

// Logout clears the active session.
func (s *EmployeeService) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = nil
}
