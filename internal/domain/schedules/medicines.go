package schedules

// CommonMedicines alimenta el quick-select del alta en el cliente.
// Mantener ordenado alfabéticamente.
var CommonMedicines = []string{
	"Acetaminophen",
	"Albuterol",
	"Amoxicillin",
	"Aspirin",
	"Atorvastatin",
	"Azithromycin",
	"Ibuprofen",
	"Insulin",
	"Levothyroxine",
	"Lisinopril",
	"Losartan",
	"Metformin",
	"Omeprazole",
	"Paracetamol",
	"Prednisone",
	"Sertraline",
	"Vitamin D",
	"Warfarin",
}
