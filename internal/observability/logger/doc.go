// Package logger provides a singleton Zap logger for keyconv.
//
// # Design Decisions
//
//   - Singleton: Una sola instancia global inicializada con Init() (o lazy
//     desde el entorno en el primer L()).
//   - Stderr: Todo log sale por stderr; stdout queda reservado para las
//     claves convertidas.
//   - Environments: "dev" usa consola con colores, "prod" usa JSON.
//   - Levels: debug, info, warn, error (configurable via KEYCONV_LOG_LEVEL).
//
// # Usage
//
// Inicialización (una vez en main.go):
//
//	logger.Init(logger.Config{
//	    Env:   os.Getenv("KEYCONV_ENV"),       // "dev" o "prod"
//	    Level: os.Getenv("KEYCONV_LOG_LEVEL"), // "debug", "info", "warn", "error"
//	})
//	defer logger.L().Sync()
//
// En el resto del código:
//
//	log := logger.Named("keyformat")
//	log.Debug("clave reconocida", logger.Format("pem_public"), logger.Bits(2048))
package logger
