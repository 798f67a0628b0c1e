package dto

// DoctorResponse mirrors a directory record. The doctors endpoint returns
// a bare array of these.
type DoctorResponse struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Rating    float64  `json:"rating"`
	Hospital  string   `json:"hospital"`
	Location  string   `json:"location"`
	Slots     []string `json:"slots"`
}
