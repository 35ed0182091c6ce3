package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/dropDatabas3/keyconv/internal/keyformat"
	"github.com/dropDatabas3/keyconv/internal/observability/logger"
)

var version = "0.2.0"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		want    keyformat.Outputs
		envFile string
	)

	root := &cobra.Command{
		Use:   "keyconv [archivo]",
		Short: "Convierte claves RSA entre PEM, RFC 3110, DER hex y racoon",
		Long: `keyconv lee una clave RSA (de stdin o de un archivo), detecta sola en
qué formato viene y la reescribe en los formatos pedidos por flags:

  PEM público (SubjectPublicKeyInfo), RFC 3110 ("0s..."), DER público
  como volcado hexadecimal, PEM privado (PKCS#1) y el bloque RSA de
  ipsec.secrets (racoon).

Los flags se pueden combinar; las salidas van concatenadas a stdout.`,
		Args:    cobra.MaximumNArgs(1),
		Version: version,
		RunE: func(cmd *cobra.Command, args []string) error {
			// Carga .env si existe, sin fallar si no está (igual que
			// el resto de las tools de la casa).
			if envFile != "" {
				_ = godotenv.Load(envFile)
			} else {
				_ = godotenv.Load()
			}
			logger.Init(logger.Config{
				Env:         os.Getenv("KEYCONV_ENV"),
				Level:       os.Getenv("KEYCONV_LOG_LEVEL"),
				ServiceName: "keyconv",
				Version:     version,
			})
			defer logger.Sync()

			if !want.Any() {
				return errors.New("debe pedir al menos una salida (-r, -p, -d, -q o -s)")
			}

			in, src, err := readInput(cmd, args)
			if err != nil {
				return err
			}
			log := logger.Named("cli")
			log.Debug("entrada leída", logger.File(src), logger.Int("bytes", len(in)))

			res, err := keyformat.Convert(in, want)
			if err != nil {
				log.Debug("conversión fallida", logger.Err(err))
				return err
			}
			if _, err := cmd.OutOrStdout().Write(res.Output); err != nil {
				return fmt.Errorf("escribir salida: %w", err)
			}
			if res.PrivateSkipped {
				fmt.Fprintln(cmd.ErrOrStderr(), "Error: must supply a private key to use -q or -s!")
			}
			return nil
		},
	}

	root.Flags().BoolVarP(&want.RFC3110, "rfc3110", "r", false, "emitir la clave pública en formato RFC 3110 (0s...)")
	root.Flags().BoolVarP(&want.PEMPublic, "pem", "p", false, "emitir la clave pública en PEM (SubjectPublicKeyInfo)")
	root.Flags().BoolVarP(&want.HexDER, "hex", "d", false, "emitir el DER público como volcado hexadecimal")
	root.Flags().BoolVarP(&want.PEMPrivate, "pem-private", "q", false, "emitir la clave privada en PEM (PKCS#1)")
	root.Flags().BoolVarP(&want.Racoon, "secrets", "s", false, "emitir el bloque RSA para ipsec.secrets (racoon)")
	root.Flags().StringVar(&envFile, "env-file", "", "ruta a un archivo .env a cargar antes de arrancar")

	return root
}

// readInput lee la clave del archivo posicional si se pasó uno, o todo
// stdin hasta EOF. Devuelve también el origen para los logs.
func readInput(cmd *cobra.Command, args []string) ([]byte, string, error) {
	if len(args) == 1 {
		b, err := os.ReadFile(args[0])
		if err != nil {
			return nil, "", fmt.Errorf("leer %s: %w", args[0], err)
		}
		return b, args[0], nil
	}
	b, err := io.ReadAll(cmd.InOrStdin())
	if err != nil {
		return nil, "", fmt.Errorf("leer stdin: %w", err)
	}
	return b, "stdin", nil
}
