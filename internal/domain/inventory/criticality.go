package inventory

import "github.com/jhoicas/stoqr-api/internal/domain/entity"

// CriticalityStatus deriva el nivel de urgencia de un stock (servicio de dominio, función pura).
// Se evalúa de arriba hacia abajo; en los límites gana el nivel más urgente:
//
//	count == 0        → OutOfStock
//	count <= C        → Urgent
//	count <= C + 20%C → Critical
//	count <= C + 50%C → Normal
//	resto             → Good
func CriticalityStatus(stockCount, criticalityLevel int64) string {
	count := float64(stockCount)
	level := float64(criticalityLevel)
	switch {
	case stockCount == 0:
		return entity.CriticalityOutOfStock
	case count <= level:
		return entity.CriticalityUrgent
	case count <= level+float64(criticalityLevel*20)/100:
		return entity.CriticalityCritical
	case count <= level+float64(criticalityLevel*50)/100:
		return entity.CriticalityNormal
	default:
		return entity.CriticalityGood
	}
}

// CriticalityRank ordena los niveles de más urgente (0) a menos urgente (4).
// Devuelve -1 para valores desconocidos.
func CriticalityRank(status string) int {
	switch status {
	case entity.CriticalityOutOfStock:
		return 0
	case entity.CriticalityUrgent:
		return 1
	case entity.CriticalityCritical:
		return 2
	case entity.CriticalityNormal:
		return 3
	case entity.CriticalityGood:
		return 4
	}
	return -1
}

// StockChange calcula el delta registrado en el libro cuando un conteo se reemplaza por otro.
func StockChange(oldCount, newCount int64) int64 {
	return newCount - oldCount
}

// GoodThreshold devuelve el menor conteo que cae en el nivel Good para un umbral dado.
func GoodThreshold(criticalityLevel int64) int64 {
	// count > C + C*50/100  ⇔  count >= floor(C*150/100) + 1
	return criticalityLevel*150/100 + 1
}
