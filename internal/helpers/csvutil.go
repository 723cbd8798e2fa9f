package helpers

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/sigebi/bienes_mid/models"
)

// Cabecera del CSV de bienes, en el orden que exporta e importa el panel.
var csvCabeceraBienes = []string{
	"nombre", "ubicacion", "fechaAdquisicion", "marca", "modelo",
	"serial", "placa", "responsable", "activo",
}

// BienesACSV serializa la lista de bienes como CSV con cabecera.
func BienesACSV(bienes []models.Bien) (string, error) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	if err := w.Write(csvCabeceraBienes); err != nil {
		return "", err
	}
	for _, b := range bienes {
		activo := "false"
		if b.Activo {
			activo = "true"
		}
		row := []string{
			b.Nombre, b.Ubicacion, b.FechaAdquisicion, b.Marca, b.Modelo,
			b.Serial, b.Placa, b.Responsable, activo,
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// ErrorFilaCSV señala una fila rechazada durante la importación.
type ErrorFilaCSV struct {
	Fila    int    `json:"fila"`
	Mensaje string `json:"mensaje"`
}

// FilaBien conserva el número de fila de origen para reportar fallos del CRUD
// contra la fila correcta del archivo.
type FilaBien struct {
	Fila int
	Bien models.Bien
}

// CSVABienes parsea un CSV de bienes. Las filas con campos obligatorios
// faltantes se reportan por separado sin abortar el resto de la importación.
func CSVABienes(r io.Reader) ([]FilaBien, []ErrorFilaCSV, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, nil, fmt.Errorf("csv sin cabecera: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(name)] = i
	}
	for _, required := range []string{"nombre", "ubicacion", "fechaAdquisicion"} {
		if _, ok := cols[required]; !ok {
			return nil, nil, fmt.Errorf("csv sin columna %s", required)
		}
	}

	get := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return strings.TrimSpace(row[idx])
	}

	var bienes []FilaBien
	var fallos []ErrorFilaCSV
	fila := 1
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		fila++
		if err != nil {
			fallos = append(fallos, ErrorFilaCSV{Fila: fila, Mensaje: err.Error()})
			continue
		}

		bien := models.Bien{
			Nombre:           get(row, "nombre"),
			Ubicacion:        get(row, "ubicacion"),
			FechaAdquisicion: get(row, "fechaAdquisicion"),
			Marca:            get(row, "marca"),
			Modelo:           get(row, "modelo"),
			Serial:           get(row, "serial"),
			Placa:            get(row, "placa"),
			Responsable:      get(row, "responsable"),
			Activo:           strings.EqualFold(get(row, "activo"), "true"),
		}
		if bien.Nombre == "" || bien.Ubicacion == "" || bien.FechaAdquisicion == "" {
			fallos = append(fallos, ErrorFilaCSV{Fila: fila, Mensaje: "nombre, ubicacion y fechaAdquisicion son obligatorios"})
			continue
		}
		bienes = append(bienes, FilaBien{Fila: fila, Bien: bien})
	}
	return bienes, fallos, nil
}
