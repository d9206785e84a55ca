package campaign

// Campo1Option pairs the human-readable campaign label shown in the form
// with the machine code stamped into the CAMPO1 column.
type Campo1Option struct {
	Label string `json:"label"`
	Value string `json:"value"`
}

// Campo1Choices is the fixed campaign/template catalogue for the IVR loads
var Campo1Choices = []Campo1Option{
	{Label: "ITAÚ VENCIDA", Value: "PHOENIXIVRITAUVENCIDA"},
	{Label: "ITAÚ CASTIGO", Value: "PHOENIXIVRITAUCASTIGO"},
	{Label: "CAJA 18", Value: "PHOENIXIVRCAJA18_3"},
	{Label: "BANCO INTERNACIONAL", Value: "PHOENIX_BINTERNACIONAL"},
	{Label: "SANTANDER HIPOTECARIO", Value: "PHOENIXIVRSANTANDERHIPO"},
	{Label: "SANTANDER CONSUMER", Value: "PHOENIXSC_ICOMERCIAL"},
	{Label: "GENERAL MOTORS", Value: "PHOENIXGMPREJUDICIAL"},
}

// Usuarios is the fixed list of CRM user identifiers offered by the form
var Usuarios = []string{"dlopez", "jriveros", "VDAD"}

// Executive is one entry of the mass-mailing sender catalogue
type Executive struct {
	NameFrom        string `json:"name_from"`
	CorreoEjecutiva string `json:"correo_ejecutiva"`
	MailFrom        string `json:"mail_from"`
}

// Executives is the fixed, ordered catalogue assigned to mass-mailing rows
// by round robin. Order matters: row 0 gets entry 0.
var Executives = []Executive{
	{NameFrom: "Daniela Cañicul", CorreoEjecutiva: "dcanicul@phoenixservice.cl", MailFrom: "dcanicul@info.phoenixserviceinfo.cl"},
	{NameFrom: "Paula Alarcon", CorreoEjecutiva: "palarcon@phoenixservice.cl", MailFrom: "palarcon@info.phoenixserviceinfo.cl"},
	{NameFrom: "Claudia Sandoval", CorreoEjecutiva: "csandoval@phoenixservice.cl", MailFrom: "csandoval@info.phoenixserviceinfo.cl"},
	{NameFrom: "Erika Alderete", CorreoEjecutiva: "Ealderete@phoenixservice.cl", MailFrom: "Ealderete@info.phoenixserviceinfo.cl"},
	{NameFrom: "Yessenia Salinas", CorreoEjecutiva: "ysalinas@phoenixservice.cl", MailFrom: "ysalinas@info.phoenixserviceinfo.cl"},
	{NameFrom: "Paulina Ortiz", CorreoEjecutiva: "portiz@phoenixservice.cl", MailFrom: "portiz@estandar.phoenixserviceinfo.cl"},
	{NameFrom: "Pamela Alamos", CorreoEjecutiva: "palamos@phoenixservice.cl", MailFrom: "palamos@info.phoenixserviceinfo.cl"},
	{NameFrom: "Luis Toledo", CorreoEjecutiva: "ltoledo@phoenixservice.cl", MailFrom: "ltoledo@info.phoenixserviceinfo.cl"},
}

// ExecutiveFor assigns an executive to an output row by position. A pure
// modulo over the catalogue keeps the assignment deterministic: row i and
// row i+len(Executives) always get the same entry.
func ExecutiveFor(rowIndex int) Executive {
	return Executives[rowIndex%len(Executives)]
}
