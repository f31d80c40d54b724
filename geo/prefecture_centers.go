package geo

import "trip-server/models"

// japanCenter is the fallback when even the prefecture is unknown.
var japanCenter = models.LatLng{Lat: 36.2048, Lng: 138.2529}

// prefectureCenters holds an approximate centroid per prefecture, used
// when place resolution fails.
var prefectureCenters = map[string]models.LatLng{
	"北海道":  {Lat: 43.0642, Lng: 141.3469},
	"青森県":  {Lat: 40.8244, Lng: 140.7406},
	"岩手県":  {Lat: 39.7036, Lng: 141.1527},
	"宮城県":  {Lat: 38.2688, Lng: 140.8721},
	"秋田県":  {Lat: 39.7186, Lng: 140.1024},
	"山形県":  {Lat: 38.2404, Lng: 140.3633},
	"福島県":  {Lat: 37.7503, Lng: 140.4676},
	"茨城県":  {Lat: 36.3414, Lng: 140.4467},
	"栃木県":  {Lat: 36.5658, Lng: 139.8836},
	"群馬県":  {Lat: 36.3911, Lng: 139.0608},
	"埼玉県":  {Lat: 35.8617, Lng: 139.6455},
	"千葉県":  {Lat: 35.6074, Lng: 140.1065},
	"東京都":  {Lat: 35.6762, Lng: 139.6503},
	"神奈川県": {Lat: 35.4475, Lng: 139.6425},
	"新潟県":  {Lat: 37.9022, Lng: 139.0236},
	"富山県":  {Lat: 36.6953, Lng: 137.2113},
	"石川県":  {Lat: 36.5947, Lng: 136.6256},
	"福井県":  {Lat: 36.0652, Lng: 136.2216},
	"山梨県":  {Lat: 35.6636, Lng: 138.5684},
	"長野県":  {Lat: 36.6513, Lng: 138.1810},
	"岐阜県":  {Lat: 35.3912, Lng: 136.7223},
	"静岡県":  {Lat: 34.9769, Lng: 138.3830},
	"愛知県":  {Lat: 35.1802, Lng: 136.9066},
	"三重県":  {Lat: 34.7303, Lng: 136.5086},
	"滋賀県":  {Lat: 35.0045, Lng: 135.8686},
	"京都府":  {Lat: 35.0212, Lng: 135.7556},
	"大阪府":  {Lat: 34.6937, Lng: 135.5023},
	"兵庫県":  {Lat: 34.6913, Lng: 135.1830},
	"奈良県":  {Lat: 34.6853, Lng: 135.8327},
	"和歌山県": {Lat: 34.2261, Lng: 135.1675},
	"鳥取県":  {Lat: 35.5036, Lng: 134.2383},
	"島根県":  {Lat: 35.4722, Lng: 133.0505},
	"岡山県":  {Lat: 34.6617, Lng: 133.9350},
	"広島県":  {Lat: 34.3966, Lng: 132.4596},
	"山口県":  {Lat: 34.1858, Lng: 131.4705},
	"徳島県":  {Lat: 34.0657, Lng: 134.5593},
	"香川県":  {Lat: 34.3401, Lng: 134.0433},
	"愛媛県":  {Lat: 33.8416, Lng: 132.7657},
	"高知県":  {Lat: 33.5597, Lng: 133.5310},
	"福岡県":  {Lat: 33.5904, Lng: 130.4017},
	"佐賀県":  {Lat: 33.2494, Lng: 130.2988},
	"長崎県":  {Lat: 32.7448, Lng: 129.8737},
	"熊本県":  {Lat: 32.7898, Lng: 130.7416},
	"大分県":  {Lat: 33.2381, Lng: 131.6126},
	"宮崎県":  {Lat: 31.9077, Lng: 131.4202},
	"鹿児島県": {Lat: 31.5602, Lng: 130.5581},
	"沖縄県":  {Lat: 26.2124, Lng: 127.6809},
}

// PrefectureCenter returns the centroid for a prefecture, or the center
// of Japan when the prefecture is unknown.
func PrefectureCenter(prefecture string) models.LatLng {
	if center, ok := prefectureCenters[prefecture]; ok {
		return center
	}
	return japanCenter
}
