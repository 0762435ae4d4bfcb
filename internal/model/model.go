package model

// Gender represents a member's gender
type Gender string

const (
	GenderMale   Gender = "Laki-laki"
	GenderFemale Gender = "Perempuan"
)

// AttendanceStatus represents the recorded presence status for one activity
type AttendanceStatus string

const (
	AttendanceHadir AttendanceStatus = "Hadir"
	AttendanceIzin  AttendanceStatus = "Izin"
	AttendanceSakit AttendanceStatus = "Sakit"
	AttendanceAlfa  AttendanceStatus = "Alfa"
)

// ActivityStatus represents whether a member is still active in the chapter
type ActivityStatus string

const (
	StatusAktif     ActivityStatus = "Aktif"
	StatusPindah    ActivityStatus = "Pindah"
	StatusMenikah   ActivityStatus = "Menikah"
	StatusMeninggal ActivityStatus = "Meninggal"
)

// BusyStatus represents a member's daily occupation
type BusyStatus string

const (
	BusySekolah     BusyStatus = "Sekolah"
	BusyKerja       BusyStatus = "Kerja"
	BusyKuliah      BusyStatus = "Kuliah"
	BusyKerjaKuliah BusyStatus = "Kerja Kuliah"
	BusyWirausaha   BusyStatus = "Wirausaha"
)

// Groups is the fixed list of sub-chapter names members belong to
var Groups = []string{
	"Wonokusumo 1",
	"Wonokusumo 2",
	"Kedung Mangu",
	"Kapas Jaya",
}

// Educations is the fixed list of last-education levels
var Educations = []string{"SD", "SMP", "SMA", "SMK", "D3", "D4", "S1", "S2", "S3"}

// Categories is the fixed list of member age categories
var Categories = []string{"SMP", "SMA", "SMK", "Pra-Nikah"}

// DefaultActivityType is assumed when an attendance row carries no activity name
const DefaultActivityType = "Rutin"

// Member is one registered youth member of a sub-chapter
type Member struct {
	ID             string         `json:"id"`
	FullName       string         `json:"fullName"`
	Gender         Gender         `json:"gender"`
	Whatsapp       string         `json:"whatsapp"`
	TTL            string         `json:"ttl"` // place and date of birth, free form
	Address        string         `json:"address"`
	FatherName     string         `json:"fatherName"`
	MotherName     string         `json:"motherName"`
	BusyStatus     BusyStatus     `json:"busyStatus"`
	ActivityStatus ActivityStatus `json:"activityStatus"`
	Education      string         `json:"education"`
	Category       string         `json:"category"`
	Group          string         `json:"group"`
}

// Attendance is one presence record for a member on a calendar date.
// MemberID is a loose reference resolved by lookup, never enforced.
type Attendance struct {
	ID           string           `json:"id"`
	MemberID     string           `json:"memberId"`
	Date         string           `json:"date"` // YYYY-MM-DD
	ActivityType string           `json:"activityType"`
	Status       AttendanceStatus `json:"status"`
	Feedback     string           `json:"feedback,omitempty"`
}

// Activity is a named event type, referenced by name from Attendance.ActivityType
type Activity struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// Schedule is a descriptive entry of the recurring activity calendar
type Schedule struct {
	ID           string `json:"id"`
	Day          string `json:"day"`
	Date         string `json:"date,omitempty"` // optional specific date
	Time         string `json:"time"`
	ActivityName string `json:"activityName"`
	Location     string `json:"location"`
}

// Snapshot is the complete value of all four collections at one instant.
// It is the unit of persistence and of remote synchronization.
type Snapshot struct {
	Members    []Member     `json:"members"`
	Attendance []Attendance `json:"attendance"`
	Activities []Activity   `json:"activities"`
	Schedules  []Schedule   `json:"schedules"`
}

// Clone returns a deep copy so callers can read or mutate without aliasing
// the authoritative collections.
func (s Snapshot) Clone() Snapshot {
	out := Snapshot{
		Members:    make([]Member, len(s.Members)),
		Attendance: make([]Attendance, len(s.Attendance)),
		Activities: make([]Activity, len(s.Activities)),
		Schedules:  make([]Schedule, len(s.Schedules)),
	}
	copy(out.Members, s.Members)
	copy(out.Attendance, s.Attendance)
	copy(out.Activities, s.Activities)
	copy(out.Schedules, s.Schedules)
	return out
}

// FindMember resolves a member by id, returning nil when the reference dangles
func (s Snapshot) FindMember(id string) *Member {
	for i := range s.Members {
		if s.Members[i].ID == id {
			return &s.Members[i]
		}
	}
	return nil
}
