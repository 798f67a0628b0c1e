package repository

import "medicare-booking/internal/domain/entity"

// doctorCatalog is the seed directory data. Slot labels are display text
// ("วันนี้ 18:30" etc.), not schedule records.
var doctorCatalog = []entity.Doctor{
	{ID: "d1", Name: "นพ. ปวรุตม์ ศิริธรรม", Specialty: "อายุรแพทย์", Rating: 4.9, Hospital: "MediCare Center (บางนา)", Location: "กรุงเทพฯ", Slots: []string{"วันนี้ 18:30", "พรุ่งนี้ 10:00", "พฤ. 14:30"}},
	{ID: "d2", Name: "พญ. ชนัญชิดา ลีวัฒน์", Specialty: "ผิวหนัง", Rating: 4.8, Hospital: "MediCare Clinic (สยาม)", Location: "กรุงเทพฯ", Slots: []string{"วันนี้ 20:00", "พรุ่งนี้ 11:00"}},
	{ID: "d3", Name: "นพ. กฤตนัย วงศ์สุข", Specialty: "กระดูกและข้อ", Rating: 4.7, Hospital: "MediCare Ortho (เชียงใหม่)", Location: "เชียงใหม่", Slots: []string{"ศ. 09:30", "ส. 15:00"}},
	{ID: "d4", Name: "พญ. วรัณณา จิตพิพัฒน์", Specialty: "กุมารเวช", Rating: 4.9, Hospital: "MediCare Kids (ขอนแก่น)", Location: "ขอนแก่น", Slots: []string{"พรุ่งนี้ 09:00", "ส. 10:00"}},
	{ID: "d5", Name: "พญ. พิชญ์สินี ธาราวงศ์", Specialty: "จิตเวช", Rating: 4.8, Hospital: "MediCare Mind (หาดใหญ่)", Location: "สงขลา", Slots: []string{"วันนี้ 21:00", "อา. 13:00"}},
	{ID: "d6", Name: "นพ. สิรวิชญ์ กมลพงศ์", Specialty: "หู คอ จมูก", Rating: 4.6, Hospital: "MediCare ENT (พระราม 2)", Location: "กรุงเทพฯ", Slots: []string{"พฤ. 17:30"}},
	{ID: "d7", Name: "นพ. ณัฐวุฒิ ภูวนนท์", Specialty: "อายุรแพทย์", Rating: 4.7, Hospital: "MediCare General (ลาดพร้าว)", Location: "กรุงเทพฯ", Slots: []string{"วันนี้ 19:00", "ศ. 10:30"}},
	{ID: "d8", Name: "พญ. ปาริฉัตร กิตติวัฒน์", Specialty: "สูติ-นรีเวช", Rating: 4.8, Hospital: "MediCare Women (พระราม 9)", Location: "กรุงเทพฯ", Slots: []string{"พรุ่งนี้ 14:00", "ส. 09:30"}},
	{ID: "d9", Name: "นพ. ธนดล วัฒนะกูล", Specialty: "ศัลยกรรม", Rating: 4.6, Hospital: "MediCare Surgery (พญาไท)", Location: "กรุงเทพฯ", Slots: []string{"อ. 16:00", "พฤ. 11:30"}},
	{ID: "d10", Name: "พญ. ศศิธร รัตนวดี", Specialty: "ผิวหนัง", Rating: 4.9, Hospital: "MediCare Skin (ทองหล่อ)", Location: "กรุงเทพฯ", Slots: []string{"วันนี้ 18:00", "ศ. 13:30"}},
	{ID: "d11", Name: "นพ. ภาสกร สิทธิเดช", Specialty: "ตา", Rating: 4.7, Hospital: "MediCare Eye (ลาดพร้าว)", Location: "กรุงเทพฯ", Slots: []string{"พ. 10:00", "ส. 16:00"}},
	{ID: "d12", Name: "พญ. กชพรรณ เกียรติศรี", Specialty: "กุมารเวช", Rating: 4.8, Hospital: "MediCare Children (บางแค)", Location: "กรุงเทพฯ", Slots: []string{"พรุ่งนี้ 08:30", "อา. 10:30"}},
	{ID: "d13", Name: "นพ. วสันต์ เศรษฐกุล", Specialty: "กระดูกและข้อ", Rating: 4.6, Hospital: "MediCare Ortho (โคราช)", Location: "นครราชสีมา", Slots: []string{"ศ. 14:00", "ส. 11:00"}},
	{ID: "d14", Name: "พญ. ชุติมา ทองสกุล", Specialty: "หู คอ จมูก", Rating: 4.7, Hospital: "MediCare ENT (เชียงใหม่)", Location: "เชียงใหม่", Slots: []string{"พฤ. 15:30", "อา. 09:00"}},
	{ID: "d15", Name: "นพ. กิตติพงศ์ สุนทรชัย", Specialty: "อายุรแพทย์", Rating: 4.8, Hospital: "MediCare Center (หาดใหญ่)", Location: "สงขลา", Slots: []string{"วันนี้ 20:00", "พ. 09:30"}},
	{ID: "d16", Name: "พญ. วารีรัตน์ แสงรุ่ง", Specialty: "สูติ-นรีเวช", Rating: 4.9, Hospital: "MediCare Women (ขอนแก่น)", Location: "ขอนแก่น", Slots: []string{"พรุ่งนี้ 13:00", "ศ. 09:00"}},
	{ID: "d17", Name: "นพ. พิชญเดช ชัยวัฒน์", Specialty: "ศัลยกรรม", Rating: 4.7, Hospital: "MediCare Surgery (ชลบุรี)", Location: "ชลบุรี", Slots: []string{"อ. 14:30", "พฤ. 09:30"}},
	{ID: "d18", Name: "พญ. จิราภรณ์ ณภัทร", Specialty: "ตา", Rating: 4.8, Hospital: "MediCare Eye (ภูเก็ต)", Location: "ภูเก็ต", Slots: []string{"ส. 10:00", "อา. 14:00"}},
	{ID: "d19", Name: "นพ. อัครเดช ปัญญากูล", Specialty: "ผิวหนัง", Rating: 4.6, Hospital: "MediCare Skin (เชียงใหม่)", Location: "เชียงใหม่", Slots: []string{"วันนี้ 17:30", "พฤ. 12:00"}},
	{ID: "d20", Name: "พญ. ณิชารีย์ อินทร์สุข", Specialty: "จิตเวช", Rating: 4.7, Hospital: "MediCare Mind (นนทบุรี)", Location: "นนทบุรี", Slots: []string{"พ. 19:00", "ศ. 18:00"}},
	{ID: "d21", Name: "นพ. พงศกร ตันธนบดี", Specialty: "อายุรแพทย์", Rating: 4.8, Hospital: "MediCare General (ระยอง)", Location: "ระยอง", Slots: []string{"พรุ่งนี้ 09:30", "ส. 13:30"}},
	{ID: "d22", Name: "พญ. ธารินี ชโลธร", Specialty: "กุมารเวช", Rating: 4.9, Hospital: "MediCare Children (ปทุมธานี)", Location: "ปทุมธานี", Slots: []string{"ศ. 10:00", "อา. 11:00"}},
	{ID: "d23", Name: "นพ. วิชญ์พล ภูริเดช", Specialty: "กระดูกและข้อ", Rating: 4.7, Hospital: "MediCare Ortho (อุบลฯ)", Location: "อุบลราชธานี", Slots: []string{"พฤ. 16:00", "ส. 09:30"}},
	{ID: "d24", Name: "พญ. ลลิตา ครุฑสกุล", Specialty: "สูติ-นรีเวช", Rating: 4.8, Hospital: "MediCare Women (นนทบุรี)", Location: "นนทบุรี", Slots: []string{"วันนี้ 18:15", "จ. 09:00"}},
	{ID: "d25", Name: "นพ. ธีรภัทร ทองนาค", Specialty: "ศัลยกรรม", Rating: 4.5, Hospital: "MediCare Surgery (พิษณุโลก)", Location: "พิษณุโลก", Slots: []string{"อ. 10:30", "ศ. 15:00"}},
	{ID: "d26", Name: "พญ. มนัสนันท์ สมจิต", Specialty: "หู คอ จมูก", Rating: 4.7, Hospital: "MediCare ENT (ระยอง)", Location: "ระยอง", Slots: []string{"พ. 14:00", "ส. 17:00"}},
	{ID: "d27", Name: "นพ. สหชาติ วิริยะศักดิ์", Specialty: "ตา", Rating: 4.8, Hospital: "MediCare Eye (ขอนแก่น)", Location: "ขอนแก่น", Slots: []string{"พฤ. 09:30", "อา. 15:30"}},
	{ID: "d28", Name: "พญ. ภูษณิศา เจริญสุข", Specialty: "ผิวหนัง", Rating: 4.7, Hospital: "MediCare Skin (หาดใหญ่)", Location: "สงขลา", Slots: []string{"ศ. 18:30", "ส. 11:30"}},
	{ID: "d29", Name: "นพ. กรองเกียรติ สุนทรวงศ์", Specialty: "อายุรแพทย์", Rating: 4.6, Hospital: "MediCare Center (ราชพฤกษ์)", Location: "นนทบุรี", Slots: []string{"วันนี้ 19:30", "พ. 08:30"}},
	{ID: "d30", Name: "พญ. ชลธิชา อภิวัฒน์พงศ์", Specialty: "จิตเวช", Rating: 4.8, Hospital: "MediCare Mind (ภูเก็ต)", Location: "ภูเก็ต", Slots: []string{"จ. 20:00", "พฤ. 18:30"}},
}
