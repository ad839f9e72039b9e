package models

import "encoding/json"

// VehicleInfo representa a identificação de um veículo inspecionado
type VehicleInfo struct {
	Placa  string   `json:"placa"`
	Marca  string   `json:"marca"`
	Modelo string   `json:"modelo"`
	IMEI   []string `json:"imei"`
}

// EmptyVehicleInfo é o fallback "não reconhecido"
func EmptyVehicleInfo() VehicleInfo {
	return VehicleInfo{IMEI: []string{}}
}

// IsEmpty indica se nenhum dado foi identificado
func (v VehicleInfo) IsEmpty() bool {
	return v.Placa == "" && v.Marca == "" && v.Modelo == "" && len(v.IMEI) == 0
}

// Clone retorna uma cópia com IMEI independente (nunca nil)
func (v VehicleInfo) Clone() VehicleInfo {
	out := v
	out.IMEI = append([]string{}, v.IMEI...)
	return out
}

// MarshalJSON garante que imei seja serializado como [] e não null
func (v VehicleInfo) MarshalJSON() ([]byte, error) {
	type alias VehicleInfo
	a := alias(v)
	if a.IMEI == nil {
		a.IMEI = []string{}
	}
	return json.Marshal(a)
}
