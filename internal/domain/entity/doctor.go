package entity

// SpecialtyAll is the sentinel value that matches every specialty.
const SpecialtyAll = "ทั้งหมด"

// Specialties is the fixed filter list shown to patients, sentinel first.
var Specialties = []string{
	SpecialtyAll,
	"อายุรแพทย์",
	"กุมารเวช",
	"ผิวหนัง",
	"จิตเวช",
	"กระดูกและข้อ",
	"สูติ-นรีเวช",
	"หู คอ จมูก",
	"ตา",
}

// Doctor is an immutable directory record, seeded at process start.
// Slots are free-text Thai labels, not parsed schedule data.
type Doctor struct {
	ID        string   `json:"id"`
	Name      string   `json:"name"`
	Specialty string   `json:"specialty"`
	Rating    float64  `json:"rating"`
	Hospital  string   `json:"hospital"`
	Location  string   `json:"location"`
	Slots     []string `json:"slots"`
}
