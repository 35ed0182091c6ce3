package logger

import (
	"sync"

	"go.uber.org/zap"
)

var (
	once     sync.Once
	instance *zap.Logger
)

// Init inicializa el logger singleton con la configuración dada.
// Es idempotente: solo la primera llamada tiene efecto.
// keyconv escribe las claves por stdout, así que todo log va a stderr.
func Init(cfg Config) {
	once.Do(func() {
		instance = build(cfg)
	})
}

// L retorna el logger singleton.
// Si Init() no fue llamado, se configura desde el entorno (FromEnv).
func L() *zap.Logger {
	if instance == nil {
		Init(FromEnv())
	}
	return instance
}

// Named retorna un logger con un nombre de componente.
func Named(name string) *zap.Logger {
	return L().Named(name)
}

// With retorna un logger con campos adicionales.
func With(fields ...zap.Field) *zap.Logger {
	return L().With(fields...)
}

// Sync flushea cualquier buffer pendiente.
// Debe llamarse con defer en main.go.
func Sync() error {
	if instance != nil {
		return instance.Sync()
	}
	return nil
}

// UnsafeResetLoggerForTests borra el estado del singleton. Usar sólo en
// tests que necesitan reinicializar con otra configuración.
func UnsafeResetLoggerForTests() {
	instance = nil
	once = sync.Once{}
}
