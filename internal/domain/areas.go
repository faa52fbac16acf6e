package domain

// seoulAreas is the fixed monitoring catalog: the named areas the citydata
// feed is polled for, with their coordinates. Grouped by district. The two
// shared entries (성수카페거리 under both 광진구 and 성동구, 혜화역 under
// both 서대문구 and 종로구 in the source data) are listed once.
var seoulAreas = []Area{
	// 강남구
	{Name: "강남 MICE 관광특구", Lat: 37.5066614, Lng: 127.0628454},
	{Name: "강남역", Lat: 37.4980854, Lng: 127.0276532},
	{Name: "고속터미널역", Lat: 37.5042724, Lng: 127.0046856},
	{Name: "교대역", Lat: 37.4938933, Lng: 127.0142322},
	{Name: "선릉역", Lat: 37.5045242, Lng: 127.0492737},
	{Name: "신논현역·논현역", Lat: 37.5045551, Lng: 127.0252564},
	{Name: "역삼역", Lat: 37.5006736, Lng: 127.0365645},
	{Name: "압구정로데오거리", Lat: 37.5270616, Lng: 127.0389741},
	{Name: "청담동 명품거리", Lat: 37.5259467, Lng: 127.0474042},
	{Name: "가로수길", Lat: 37.5204173, Lng: 127.0229145},

	// 강동구
	{Name: "고덕역", Lat: 37.5548647, Lng: 127.1545159},
	{Name: "서울 암사동 유적", Lat: 37.5507112, Lng: 127.1297664},

	// 강북구
	{Name: "미아사거리역", Lat: 37.6134436, Lng: 127.0303268},
	{Name: "북한산우이역", Lat: 37.6630642, Lng: 127.0118708},
	{Name: "수유역", Lat: 37.6378355, Lng: 127.0251699},
	{Name: "4·19 카페거리", Lat: 37.6424396, Lng: 127.0145932},
	{Name: "수유리 먹자골목", Lat: 37.6372165, Lng: 127.0255142},

	// 강서구
	{Name: "발산역", Lat: 37.5581682, Lng: 126.8377955},
	{Name: "김포공항", Lat: 37.5585973, Lng: 126.8025488},
	{Name: "고척돔", Lat: 37.4982125, Lng: 126.8429179},
	{Name: "강서한강공원", Lat: 37.5675813, Lng: 126.8225002},

	// 관악구
	{Name: "서울대입구역", Lat: 37.4812032, Lng: 126.9524143},
	{Name: "신림역", Lat: 37.4840693, Lng: 126.9294529},
	{Name: "노량진", Lat: 37.5133097, Lng: 126.9428261},

	// 광진구
	{Name: "건대입구역", Lat: 37.5404578, Lng: 127.0694181},
	{Name: "군자역", Lat: 37.5571454, Lng: 127.0795313},
	{Name: "뚝섬역", Lat: 37.5474001, Lng: 127.0474821},
	{Name: "어린이대공원", Lat: 37.5480124, Lng: 127.0741101},
	{Name: "아차산", Lat: 37.5552702, Lng: 127.0972960},
	{Name: "성수카페거리", Lat: 37.5426762, Lng: 127.0560246},

	// 구로구
	{Name: "가산디지털단지역", Lat: 37.4819424, Lng: 126.8825100},
	{Name: "구로디지털단지역", Lat: 37.4851566, Lng: 126.9014964},
	{Name: "구로역", Lat: 37.5030528, Lng: 126.8818090},
	{Name: "남구로역", Lat: 37.4856306, Lng: 126.8873066},
	{Name: "신도림역", Lat: 37.5091557, Lng: 126.8912390},

	// 노원구
	{Name: "창동 신경제 중심지", Lat: 37.6537685, Lng: 127.0478415},

	// 도봉구
	{Name: "쌍문동 맛집거리", Lat: 37.6482897, Lng: 127.0342835},

	// 동대문구
	{Name: "동대문 관광특구", Lat: 37.5711652, Lng: 127.0075755},
	{Name: "동대문역", Lat: 37.5712803, Lng: 127.0097171},
	{Name: "장한평역", Lat: 37.5614460, Lng: 127.0645451},
	{Name: "청량리 제기동 일대 전통시장", Lat: 37.5800520, Lng: 127.0389451},
	{Name: "DDP(동대문디자인플라자)", Lat: 37.5674028, Lng: 127.0098185},

	// 동작구
	{Name: "사당역", Lat: 37.4764763, Lng: 126.9777464},
	{Name: "총신대입구(이수)역", Lat: 37.4862592, Lng: 126.9822701},

	// 마포구
	{Name: "홍대 관광특구", Lat: 37.5561090, Lng: 126.9225419},
	{Name: "합정역", Lat: 37.5495737, Lng: 126.9139742},
	{Name: "홍대입구역(2호선)", Lat: 37.5571454, Lng: 126.9252262},
	{Name: "연남동", Lat: 37.5627454, Lng: 126.9244356},
	{Name: "망원한강공원", Lat: 37.5524557, Lng: 126.8999944},
	{Name: "월드컵공원", Lat: 37.5716022, Lng: 126.8797896},
	{Name: "DMC(디지털미디어시티)", Lat: 37.5785683, Lng: 126.8915047},

	// 서대문구
	{Name: "신촌·이대역", Lat: 37.5568707, Lng: 126.9368323},
	{Name: "충정로역", Lat: 37.5595961, Lng: 126.9638743},
	{Name: "혜화역", Lat: 37.5820926, Lng: 127.0016370},
	{Name: "독립문", Lat: 37.5705098, Lng: 126.9577767},

	// 서초구
	{Name: "양재역", Lat: 37.4843030, Lng: 127.0341787},
	{Name: "방배역 먹자골목", Lat: 37.4814106, Lng: 126.9974770},
	{Name: "서리풀공원·몽마르뜨공원", Lat: 37.4866577, Lng: 127.0077036},
	{Name: "반포한강공원", Lat: 37.5102695, Lng: 126.9948528},

	// 성동구
	{Name: "왕십리역", Lat: 37.5612809, Lng: 127.0385406},
	{Name: "서울숲공원", Lat: 37.5443613, Lng: 127.0374614},
	{Name: "뚝섬한강공원", Lat: 37.5297449, Lng: 127.0697750},

	// 성북구
	{Name: "성신여대입구역", Lat: 37.5926880, Lng: 127.0162396},
	{Name: "외대앞", Lat: 37.5964984, Lng: 127.0583471},

	// 송파구
	{Name: "잠실 관광특구", Lat: 37.5130731, Lng: 127.1001997},
	{Name: "잠실종합운동장", Lat: 37.5158076, Lng: 127.0731814},
	{Name: "잠실한강공원", Lat: 37.5207124, Lng: 127.0873904},
	{Name: "가락시장", Lat: 37.4929000, Lng: 127.1179767},

	// 양천구
	{Name: "오목교역·목동운동장", Lat: 37.5245196, Lng: 126.8753721},

	// 영등포구
	{Name: "영등포 타임스퀘어", Lat: 37.5173108, Lng: 126.9033793},
	{Name: "여의도", Lat: 37.5215132, Lng: 126.9243001},
	{Name: "여의도한강공원", Lat: 37.5284309, Lng: 126.9337667},

	// 용산구
	{Name: "이태원 관광특구", Lat: 37.5340087, Lng: 126.9941844},
	{Name: "삼각지역", Lat: 37.5343933, Lng: 126.9729813},
	{Name: "서울역", Lat: 37.5559603, Lng: 126.9726557},
	{Name: "용산역", Lat: 37.5300374, Lng: 126.9650008},
	{Name: "이태원역", Lat: 37.5344381, Lng: 126.9941904},
	{Name: "국립중앙박물관·용산가족공원", Lat: 37.5240796, Lng: 126.9803327},
	{Name: "남산공원", Lat: 37.5507075, Lng: 126.9905033},
	{Name: "이촌한강공원", Lat: 37.5194277, Lng: 126.9722253},
	{Name: "해방촌·경리단길", Lat: 37.5401641, Lng: 126.9883095},
	{Name: "용리단길", Lat: 37.5290107, Lng: 126.9650817},
	{Name: "이태원 앤틱가구거리", Lat: 37.5346098, Lng: 126.9910908},

	// 은평구
	{Name: "연신내역", Lat: 37.6190748, Lng: 126.9205244},
	{Name: "불광천", Lat: 37.6088770, Lng: 126.9293697},
	{Name: "북서울꿈의숲", Lat: 37.6207611, Lng: 127.0416319},

	// 종로구
	{Name: "종로·청계 관광특구", Lat: 37.5704009, Lng: 126.9882266},
	{Name: "경복궁", Lat: 37.5776087, Lng: 126.9767453},
	{Name: "창덕궁·종묘", Lat: 37.5792550, Lng: 126.9911624},
	{Name: "광화문·덕수궁", Lat: 37.5711452, Lng: 126.9767365},
	{Name: "보신각", Lat: 37.5699033, Lng: 126.9837760},
	{Name: "북촌한옥마을", Lat: 37.5824129, Lng: 126.9846369},
	{Name: "서촌", Lat: 37.5791858, Lng: 126.9708966},
	{Name: "인사동", Lat: 37.5743189, Lng: 126.9837464},
	{Name: "청와대", Lat: 37.5866076, Lng: 126.9745179},
	{Name: "낙산공원·이화마을", Lat: 37.5808156, Lng: 127.0067010},
	{Name: "익선동", Lat: 37.5724551, Lng: 126.9896308},

	// 중구
	{Name: "명동 관광특구", Lat: 37.5636490, Lng: 126.9895503},
	{Name: "광장(전통)시장", Lat: 37.5704438, Lng: 127.0092876},
	{Name: "덕수궁길·정동", Lat: 37.5652771, Lng: 126.9745313},
	{Name: "남대문시장", Lat: 37.5592154, Lng: 126.9776091},
	{Name: "서울광장", Lat: 37.5657000, Lng: 126.9769000},
	{Name: "북창동 먹자골목", Lat: 37.5608374, Lng: 126.9753706},

	// 중랑구
	{Name: "회기역", Lat: 37.5899272, Lng: 127.0575051},
}

// DefaultCatalog returns the built-in Seoul monitoring catalog.
func DefaultCatalog() *Catalog {
	return NewCatalog(seoulAreas)
}
