// Package docs Deserts Microservice API.
//
// Микросервис анализа facility deserts по census-данным США.
// Классифицирует blockgroups как дефицитные зоны по порогам бедности
// и расстояния до ближайшего объекта, строит демографический разрез
// и отдаёт GeoJSON-слои для карты дашборда.
//
// Основные возможности:
// - Классификация дефицитных зон с настраиваемыми порогами
// - Выделение непропорционально затронутых демографических групп
// - GeoJSON-слои: маркеры зон, локации объектов, ячейки Вороного
// - Сессионный выбор пользователя между рендерами дашборда
// - Фоновый пересчёт сводок через Redis Streams
//
//	Schemes: http, https
//	BasePath: /
//	Version: 1.0.0
//
//	Consumes:
//	- application/json
//
//	Produces:
//	- application/json
//
// swagger:meta
package docs
