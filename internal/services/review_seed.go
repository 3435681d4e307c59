package services

import "github.com/thewiseshop/pawtrait-backend/internal/dto"

// seedReviews ship compiled in and are appended after persisted reviews.
// Their integer ids mark them as immutable; delete always refuses them.
var seedReviews = []dto.ReviewResponse{
	{
		ID:          1,
		User:        "초코맘",
		Rating:      5,
		Text:        "우리집 강아지가 진짜 중세 귀족 왕자님이 됐어요! 르네상스 화풍 퀄리티가 미쳤습니다. 액자로 바로 뽑았어요.",
		BeforeImage: "https://imgur.com/4ID58aq.png",
		AfterImage:  "https://imgur.com/t8GCshf.png",
		Date:        "2024.03.15",
	},
	{
		ID:          2,
		User:        "토리집사",
		Rating:      5,
		Text:        "감성 애니메이션 느낌 대박이에요... 지브리 영화 한 장면 같아요 ㅠㅠ 너무 몽글몽글하고 예쁩니다.",
		BeforeImage: "https://imgur.com/TRXS9Ir.png",
		AfterImage:  "https://imgur.com/zVqaOML.png",
		Date:        "2024.03.14",
	},
	{
		ID:          3,
		User:        "민준아빠",
		Rating:      5,
		Text:        "사이버펑크 스타일 진짜 힙하네요! 네온 조명 표현이 너무 예술적이라 만족스럽습니다.",
		BeforeImage: "https://imgur.com/EBMcJcY.png",
		AfterImage:  "https://imgur.com/1TzkMWN.png",
		Date:        "2024.03.13",
	},
	{
		ID:          4,
		User:        "행복이네",
		Rating:      5,
		Text:        "유화 마스터피스 스타일로 변환했는데 진짜 반 고흐가 그려준 줄 알았어요. 붓터치가 살아있네요.",
		BeforeImage: "https://imgur.com/KpDraUm.png",
		AfterImage:  "https://imgur.com/h2khhcs.png",
		Date:        "2024.03.12",
	},
	{
		ID:          5,
		User:        "나비엄마",
		Rating:      5,
		Text:        "3D 애니메이션 캐릭터 같아서 너무 귀여워요! 디즈니 영화에 우리 나비가 출연한 느낌입니다.",
		BeforeImage: "https://imgur.com/UTBqPjf.png",
		AfterImage:  "https://imgur.com/EBAQPy0.png",
		Date:        "2024.03.10",
	},
	{
		ID:          6,
		User:        "구름이누나",
		Rating:      5,
		Text:        "수채화 특유의 맑은 느낌이 너무 좋습니다. 털 색깔이랑 잘 어우러져서 집안 어디에 둬도 예쁠 것 같아요.",
		BeforeImage: "https://imgur.com/HGja6xe.png",
		AfterImage:  "https://imgur.com/AuUpZqs.png",
		Date:        "2024.03.08",
	},
	{
		ID:          7,
		User:        "별이네",
		Rating:      5,
		Text:        "웹툰/만화 스타일로 그렸더니 진짜 주인공이 됐네요! 선이 깔끔해서 너무 맘에 들어요.",
		BeforeImage: "https://imgur.com/Xek65vO.png",
		AfterImage:  "https://imgur.com/HBqIeQI.png",
		Date:        "2024.03.05",
	},
	{
		ID:          8,
		User:        "지우맘",
		Rating:      5,
		Text:        "디지털 페인팅 화풍으로 했더니 사진보다 훨씬 세련된 예술 작품이 됐어요. 적극 추천합니다.",
		BeforeImage: "https://imgur.com/ZzFgPGU.png",
		AfterImage:  "https://imgur.com/PVm55Dk.png",
		Date:        "2024.03.03",
	},
	{
		ID:          9,
		User:        "복실이아빠",
		Rating:      5,
		Text:        "픽셀 아트 너무 유니크해요! 레트로한 감성이 반려동물과 만나니까 더 특별해 보이네요.",
		BeforeImage: "https://imgur.com/UikbFiH.png",
		AfterImage:  "https://imgur.com/WGDXydA.png",
		Date:        "2024.03.01",
	},
}
