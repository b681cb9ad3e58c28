//go:generate mockgen -source=../ledger_store.go    -destination=./mock_ledger_store.go    -package=mocks
//go:generate mockgen -source=../report_cache.go    -destination=./mock_report_cache.go    -package=mocks
//go:generate mockgen -source=../validator.go       -destination=./mock_validator.go       -package=mocks
//go:generate mockgen -source=../ledger_service.go  -destination=./mock_ledger_service.go  -package=mocks

package mocks
