package services

// AddServiceAuth agrega el header Authorization con el token de servicio si
// está configurado. Lo usan las operaciones públicas (solicitud de
// mantenimiento, seguimiento, consulta por placa) que llegan sin token de
// usuario pero deben autenticarse ante bienes_crud.
func AddServiceAuth(headers map[string]string) map[string]string {
	if headers == nil {
		headers = make(map[string]string)
	}
	token := GetConfig().ServiceBearerToken
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}
	return headers
}
