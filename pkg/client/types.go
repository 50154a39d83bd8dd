package client

import "time"

type Profile struct {
	UserID      int64    `json:"user_id"`
	Username    string   `json:"username"`
	RoleName    string   `json:"role_name"`
	RoleID      int64    `json:"role_id"`
	StaffID     int64    `json:"staff_id"`
	StaffName   string   `json:"staff_name"`
	BadgeNumber string   `json:"badge_number"`
	Department  string   `json:"department"`
	PolRank     string   `json:"pol_rank"`
	Permissions []string `json:"permissions,omitempty"`
}

type LoginResult struct {
	Token string  `json:"token"`
	User  Profile `json:"user"`
}

type Stats struct {
	TotalCases      int64 `json:"total_cases"`
	OpenCases       int64 `json:"open_cases"`
	WantedCriminals int64 `json:"wanted_criminals"`
	ActiveStaff     int64 `json:"active_staff"`
}

type Case struct {
	CaseID             int64     `json:"case_id"`
	FIRNumber          string    `json:"FIR_number"`
	CrimeTypeID        int64     `json:"crime_type_id"`
	CrimeName          *string   `json:"crime_name"`
	IPCSection         *string   `json:"ipc_section"`
	SeverityLevel      *string   `json:"severity_level"`
	City               *string   `json:"city"`
	District           *string   `json:"district"`
	PoliceStationCode  *string   `json:"police_station_code"`
	Latitude           *float64  `json:"latitude"`
	Longitude          *float64  `json:"longitude"`
	Status             string    `json:"status"`
	Description        *string   `json:"description"`
	PrimaryAccusedID   *int64    `json:"primary_accused_id"`
	PrimaryAccusedName *string   `json:"primary_accused_name"`
	DateReported       time.Time `json:"date_reported"`
}

type ActiveCase struct {
	CaseID        int64     `json:"case_id"`
	FIRNumber     string    `json:"FIR_number"`
	CrimeName     *string   `json:"crime_name"`
	City          *string   `json:"city"`
	District      *string   `json:"district"`
	DateReported  time.Time `json:"date_reported"`
	AccusedStatus string    `json:"accused_status"`
}

// CaseUpdate mirrors PUT /cases/{id}. A nil field is left out of the request;
// ClearDescription sends an explicit null for the description.
type CaseUpdate struct {
	Status           string
	Description      *string
	ClearDescription bool
}

type Category struct {
	CrimeTypeID   int64  `json:"crime_type_id"`
	CrimeName     string `json:"crime_name"`
	IPCSection    string `json:"ipc_section"`
	SeverityLevel string `json:"severity_level"`
}

type Criminal struct {
	CriminalID   int64   `json:"criminal_id"`
	Name         string  `json:"name"`
	Alias        *string `json:"alias"`
	Gender       string  `json:"gender"`
	IsWanted     bool    `json:"is_wanted"`
	TotalCases   int     `json:"total_cases"`
	WantedReason *string `json:"wanted_reason,omitempty"`
}

// CriminalRequest mirrors POST /criminals. LinkedCaseID zero links nothing.
type CriminalRequest struct {
	Name                string   `json:"name"`
	Alias               string   `json:"alias,omitempty"`
	Gender              string   `json:"gender"`
	DateOfBirth         string   `json:"date_of_birth,omitempty"`
	Height              *float64 `json:"height,omitempty"`
	Weight              *float64 `json:"weight,omitempty"`
	EyeColor            string   `json:"eye_color,omitempty"`
	HairColor           string   `json:"hair_color,omitempty"`
	DistinguishingMarks string   `json:"distinguishing_marks,omitempty"`
	Address             string   `json:"address,omitempty"`
	ContactNumber       string   `json:"contact_number,omitempty"`
	IsWanted            bool     `json:"is_wanted"`
	WantedReason        string   `json:"wanted_reason,omitempty"`
	LinkedCaseID        int64    `json:"linked_case_id,omitempty"`
}

type Investigation struct {
	InvestigationID    int64     `json:"investigation_id"`
	CaseID             int64     `json:"case_id"`
	FIRNumber          string    `json:"FIR_number"`
	Status             string    `json:"status"`
	InvestigationNotes *string   `json:"investigation_notes"`
	OfficerName        *string   `json:"officer_name"`
	LastUpdated        time.Time `json:"last_updated"`
}

type InvestigationRequest struct {
	CaseID             int64  `json:"case_id"`
	AssignedTo         int64  `json:"assigned_to,omitempty"`
	InvestigationNotes string `json:"investigation_notes,omitempty"`
	Status             string `json:"status,omitempty"`
}

// InvestigationUpdate mirrors PUT /investigations/{id}; nil and zero fields
// are left unchanged.
type InvestigationUpdate struct {
	Status             string  `json:"status,omitempty"`
	InvestigationNotes *string `json:"investigation_notes,omitempty"`
	AssignedTo         int64   `json:"assigned_to,omitempty"`
}

type Staff struct {
	StaffID     int64   `json:"staff_id"`
	Name        string  `json:"name"`
	PolRank     string  `json:"pol_rank"`
	BadgeNumber string  `json:"badge_number"`
	Department  string  `json:"department"`
	IsActive    bool    `json:"is_active"`
	JoinDate    *string `json:"join_date"`
}

type StaffRequest struct {
	Name        string `json:"name"`
	PolRank     string `json:"pol_rank"`
	BadgeNumber string `json:"badge_number"`
	Contact     string `json:"contact,omitempty"`
	Department  string `json:"department"`
	JoinDate    string `json:"join_date,omitempty"`
}

type User struct {
	UserID      int64      `json:"user_id"`
	Username    string     `json:"username"`
	CreatedAt   time.Time  `json:"created_at"`
	LastLogin   *time.Time `json:"last_login"`
	RoleName    string     `json:"role_name"`
	StaffName   string     `json:"staff_name"`
	BadgeNumber string     `json:"badge_number"`
	IsActive    bool       `json:"is_active"`
}

type UserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	RoleID   int64  `json:"role_id"`
	StaffID  int64  `json:"staff_id"`
}

// UserUpdate mirrors PUT /users/{id}; nil and zero fields are left unchanged.
type UserUpdate struct {
	RoleID   int64 `json:"role_id,omitempty"`
	IsActive *bool `json:"is_active,omitempty"`
}

type Role struct {
	RoleID      int64    `json:"role_id"`
	RoleName    string   `json:"role_name"`
	Permissions []string `json:"permissions"`
}

type AuditLog struct {
	LogID     int64     `json:"log_id"`
	UserID    int64     `json:"user_id"`
	Action    string    `json:"action"`
	TableName string    `json:"table_name"`
	RecordID  int64     `json:"record_id"`
	Timestamp time.Time `json:"timestamp"`
	Username  string    `json:"username"`
	StaffName string    `json:"staff_name"`
	RoleName  string    `json:"role_name"`
}

// FIRRequest mirrors POST /fir. Dates may be YYYY-MM-DD or RFC 3339.
type FIRRequest struct {
	FIRNumber          string   `json:"FIR_number"`
	ComplainantName    string   `json:"complainant_name"`
	ComplainantContact string   `json:"complainant_contact,omitempty"`
	DateFiled          string   `json:"date_filed,omitempty"`
	CrimeTypeID        int64    `json:"crime_type_id"`
	City               string   `json:"city,omitempty"`
	District           string   `json:"district,omitempty"`
	PoliceStationCode  string   `json:"police_station_code,omitempty"`
	Latitude           *float64 `json:"latitude,omitempty"`
	Longitude          *float64 `json:"longitude,omitempty"`
	Description        string   `json:"description,omitempty"`
	DateReported       string   `json:"date_reported"`
}
