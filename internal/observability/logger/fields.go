package logger

import "go.uber.org/zap"

// =================================================================================
// CAMPOS ESTÁNDAR - CLAVES
// =================================================================================

// Format crea un campo para el formato de clave detectado.
func Format(v string) zap.Field {
	return zap.String("format", v)
}

// Bits crea un campo para el tamaño del módulo en bits.
func Bits(v int) zap.Field {
	return zap.Int("bits", v)
}

// Private crea un campo que indica si la clave trae material privado.
func Private(v bool) zap.Field {
	return zap.Bool("private", v)
}

// File crea un campo para el origen de la entrada (path o "stdin").
func File(v string) zap.Field {
	return zap.String("file", v)
}

// =================================================================================
// CAMPOS GENÉRICOS
// =================================================================================

// Err crea un campo para un error.
func Err(err error) zap.Field {
	return zap.Error(err)
}

// String crea un campo string genérico.
func String(key, v string) zap.Field {
	return zap.String(key, v)
}

// Int crea un campo int genérico.
func Int(key string, v int) zap.Field {
	return zap.Int(key, v)
}

// Bool crea un campo bool genérico.
func Bool(key string, v bool) zap.Field {
	return zap.Bool(key, v)
}
