package ina219 // import "kastelo.dev/ina219"

// Columns are the spreadsheet column names, in output order.
var Columns = []string{
	"READ",
	"Imax_mA",
	"Imax_A",
	"LSB_A",
	"Scale",
	"Calibration",
	"Bus_Voltage_mV",
	"Current_mA",
	"Shunt_Voltage_mV",
}

// Record is one DATA line from a calibration sweep log.
type Record struct {
	Read           int
	ImaxMA         int
	ImaxA          float64
	LSBA           float64
	Scale          int
	Calibration    int
	BusVoltageMV   int
	CurrentMA      int
	ShuntVoltageMV int
}

// Values returns the record fields in Columns order.
func (r Record) Values() []any {
	return []any{
		r.Read,
		r.ImaxMA,
		r.ImaxA,
		r.LSBA,
		r.Scale,
		r.Calibration,
		r.BusVoltageMV,
		r.CurrentMA,
		r.ShuntVoltageMV,
	}
}
