package appointment

import "github.com/royal-barbershop/booking-service/pkg/txmanager"

// Переиспользуем интерфейсы txmanager для работы с БД.
// Репозиторий одинаково работает с *sql.DB и с активной транзакцией из контекста.
type DBExecutor = txmanager.DBExecutor
