package upstream

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/attendance"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/employee"
	"github.com/cmlabs-hris/hris-calendar-go/internal/domain/leave"
	"github.com/cmlabs-hris/hris-calendar-go/internal/pkg/datetime"
)

// id accepts numeric or string identifiers.
type id string

func (i *id) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*i = ""
		return nil
	}
	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
		*i = id(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err != nil {
		return err
	}
	*i = id(n.String())
	return nil
}

type attendanceDTO struct {
	ID          id             `json:"id"`
	UserID      id             `json:"userId"`
	UserName    string         `json:"userName"`
	Date        datetime.Date  `json:"date"`
	CheckIn     datetime.Clock `json:"checkIn"`
	CheckInAlt  datetime.Clock `json:"checkInTime"`
	CheckOut    datetime.Clock `json:"checkOut"`
	CheckOutAlt datetime.Clock `json:"checkOutTime"`
	Status      string         `json:"status"`
	Notes       *string        `json:"notes"`
}

func (d attendanceDTO) toRecord() attendance.Record {
	checkIn, checkOut := d.CheckIn, d.CheckOut
	if checkIn == "" {
		checkIn = d.CheckInAlt
	}
	if checkOut == "" {
		checkOut = d.CheckOutAlt
	}
	return attendance.Record{
		ID:           string(d.ID),
		EmployeeID:   string(d.UserID),
		EmployeeName: d.UserName,
		Date:         string(d.Date),
		CheckInTime:  checkIn.Ptr(),
		CheckOutTime: checkOut.Ptr(),
		Status:       attendance.Status(normalizeEnum(d.Status)),
		Notes:        d.Notes,
	}
}

type leaveDTO struct {
	ID        id            `json:"id"`
	UserID    id            `json:"userId"`
	UserName  string        `json:"userName"`
	StartDate datetime.Date `json:"startDate"`
	EndDate   datetime.Date `json:"endDate"`
	LeaveType string        `json:"leaveType"`
	Reason    *string       `json:"reason"`
	Status    string        `json:"status"`
}

func (d leaveDTO) toInterval() leave.Interval {
	return leave.Interval{
		ID:           string(d.ID),
		EmployeeID:   string(d.UserID),
		EmployeeName: d.UserName,
		StartDate:    string(d.StartDate),
		EndDate:      string(d.EndDate),
		LeaveType:    leave.LeaveType(normalizeEnum(d.LeaveType)),
		Status:       leave.Status(normalizeEnum(d.Status)),
		Reason:       d.Reason,
	}
}

type userDTO struct {
	ID         id      `json:"id"`
	FirstName  string  `json:"firstName"`
	LastName   string  `json:"lastName"`
	Email      string  `json:"email"`
	Phone      *string `json:"phone"`
	Position   string  `json:"position"`
	Department string  `json:"department"`
	Role       string  `json:"role"`
	Active     *bool   `json:"active"`
}

func (d userDTO) toEmployee() employee.Employee {
	return employee.Employee{
		ID:         string(d.ID),
		FirstName:  d.FirstName,
		LastName:   d.LastName,
		Email:      d.Email,
		Phone:      d.Phone,
		Position:   d.Position,
		Department: d.Department,
		Role:       normalizeEnum(d.Role),
		Active:     d.Active == nil || *d.Active,
	}
}

func normalizeEnum(s string) string {
	return strings.ToUpper(strings.TrimSpace(s))
}
