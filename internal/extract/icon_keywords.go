package extract

// defaultIconKeywords maps Russian word stems to aoe2techtree img/ paths.
// Stems are used instead of full words so that inflected forms still match.
// Where a stem is contained in a longer, more specific stem the longer one
// wins at lookup time, so order here only matters between equal lengths.
var defaultIconKeywords = []IconKeyword{
	// Economy units
	{"крестьян", "Units/83.png"},
	{"рабоч", "Units/83.png"},
	{"рыболовн", "Units/13.png"},
	{"рыбацк", "Units/13.png"},
	{"рыбак", "Units/13.png"},
	{"торговые повозки", "Units/128.png"},
	{"торговых повозок", "Units/128.png"},
	{"торговая повозка", "Units/128.png"},
	{"повозк", "Units/128.png"},
	{"торговые когги", "Units/17.png"},
	{"торговых коггов", "Units/17.png"},
	{"когг", "Units/17.png"},
	{"транспортн", "Units/545.png"},

	// Infantry
	{"ополчен", "Units/74.png"},
	{"латник", "Units/75.png"},
	{"длинный мечник", "Units/77.png"},
	{"длинные мечники", "Units/77.png"},
	{"двуручный мечник", "Units/473.png"},
	{"двуручные мечники", "Units/473.png"},
	{"мечник", "Units/77.png"},
	{"чемпион", "Units/567.png"},
	{"копейщик", "Units/93.png"},
	{"пикинер", "Units/358.png"},
	{"алебардщик", "Units/359.png"},
	{"орлы-разведчики", "Units/751.png"},
	{"орел-разведчик", "Units/751.png"},
	{"воины-орлы", "Units/753.png"},
	{"воин-орел", "Units/753.png"},
	{"элитные воины-орлы", "Units/752.png"},
	{"пехот", "Buildings/12.png"},

	// Archers
	{"лучник", "Units/4.png"},
	{"стрелк", "Units/4.png"},
	{"арбалетчик", "Units/24.png"},
	{"тяжелые арбалетчики", "Units/492.png"},
	{"тяжелый арбалетчик", "Units/492.png"},
	{"застрельщик", "Units/7.png"},
	{"конные лучники", "Units/39.png"},
	{"конных лучников", "Units/39.png"},
	{"конный лучник", "Units/39.png"},
	{"конного лучника", "Units/39.png"},
	{"пушкар", "Units/5.png"},
	{"ручные пушки", "Units/5.png"},

	// Cavalry
	{"разведчик", "Units/448.png"},
	{"скаут", "Units/448.png"},
	{"легкая кавалерия", "Units/546.png"},
	{"легкой кавалерии", "Units/546.png"},
	{"гусар", "Units/441.png"},
	{"рыцар", "Units/38.png"},
	{"кавалерист", "Units/283.png"},
	{"паладин", "Units/569.png"},
	{"верблюд", "Units/329.png"},
	{"тяжелые верблюды", "Units/330.png"},
	{"слон", "Units/1132.png"},
	{"улан", "Units/1370.png"},
	{"кавалери", "Buildings/101.png"},
	{"конниц", "Buildings/101.png"},
	{"конн", "Buildings/101.png"},

	// Siege
	{"таран", "Units/35.png"},
	{"мангонел", "Units/280.png"},
	{"онагр", "Units/550.png"},
	{"скорпион", "Units/279.png"},
	{"бомбардная пушка", "Units/36.png"},
	{"бомбардные пушки", "Units/36.png"},
	{"бомбардных пушек", "Units/36.png"},
	{"требушет", "Units/42.png"},
	{"петард", "Units/440.png"},
	{"осадная башня", "Units/1105.png"},
	{"осадные башни", "Units/1105.png"},
	{"осадн", "Buildings/49.png"},

	// Monks and others
	{"монах", "Units/125.png"},
	{"миссионер", "Units/775.png"},
	{"король", "Units/434.png"},
	{"кондотьер", "Units/882.png"},

	// Navy
	{"галер", "Units/539.png"},
	{"боевые галеры", "Units/21.png"},
	{"боевая галера", "Units/21.png"},
	{"галеон", "Units/442.png"},
	{"пушечный галеон", "Units/420.png"},
	{"пушечные галеоны", "Units/420.png"},
	{"пушечных галеонов", "Units/420.png"},
	{"брандер", "Units/529.png"},
	{"подрывн", "Units/527.png"},
	{"дромон", "Units/1795.png"},
	{"корабл", "Buildings/45.png"},
	{"флот", "Buildings/45.png"},

	// Unique units
	{"катафракт", "Units/40.png"},
	{"длинный лук", "Units/8.png"},
	{"длиннолучник", "Units/8.png"},
	{"хускарл", "Units/41.png"},
	{"самура", "Units/291.png"},
	{"чу-ко-ну", "Units/73.png"},
	{"мангудай", "Units/11.png"},
	{"ягуар", "Units/725.png"},
	{"янычар", "Units/46.png"},
	{"мамлюк", "Units/282.png"},
	{"берсерк", "Units/692.png"},
	{"тевтонский рыцарь", "Units/25.png"},
	{"тевтонские рыцари", "Units/25.png"},
	{"метатель топоров", "Units/281.png"},
	{"метатели топоров", "Units/281.png"},
	{"генуэзский арбалетчик", "Units/866.png"},
	{"генуэзские арбалетчики", "Units/866.png"},
	{"мадьярский гусар", "Units/869.png"},
	{"мадьярские гусары", "Units/869.png"},
	{"камаюк", "Units/879.png"},
	{"пращник", "Units/185.png"},
	{"боевая повозка", "Units/827.png"},
	{"боевые повозки", "Units/827.png"},
	{"конкистадор", "Units/771.png"},
	{"таркан", "Units/755.png"},
	{"шотел", "Units/1016.png"},
	{"органная пушка", "Units/1001.png"},
	{"карамбит", "Units/1123.png"},
	{"аранбай", "Units/1126.png"},
	{"слон-баллист", "Units/1120.png"},
	{"кешик", "Units/1228.png"},
	{"кипчак", "Units/1231.png"},
	{"лейтис", "Units/1234.png"},

	// Buildings
	{"городской центр", "Buildings/109.png"},
	{"городские центры", "Buildings/109.png"},
	{"городских центров", "Buildings/109.png"},
	{"городского центра", "Buildings/109.png"},
	{"городском центре", "Buildings/109.png"},
	{"домов", "Buildings/70.png"},
	{"мельниц", "Buildings/68.png"},
	{"лесопилк", "Buildings/562.png"},
	{"лесоруб", "Buildings/562.png"},
	{"шахт", "Buildings/584.png"},
	{"рудник", "Buildings/584.png"},
	{"пристан", "Buildings/45.png"},
	{"верф", "Buildings/45.png"},
	{"ферм", "Buildings/50.png"},
	{"ловушк", "Buildings/199.png"},
	{"рынок", "Buildings/84.png"},
	{"рынк", "Buildings/84.png"},
	{"торговл", "Buildings/84.png"},
	{"кузниц", "Buildings/103.png"},
	{"монастыр", "Buildings/104.png"},
	{"университет", "Buildings/209.png"},
	{"казарм", "Buildings/12.png"},
	{"стрельбищ", "Buildings/87.png"},
	{"конюшн", "Buildings/101.png"},
	{"осадная мастерская", "Buildings/49.png"},
	{"осадной мастерской", "Buildings/49.png"},
	{"мастерск", "Buildings/49.png"},
	{"замок", "Buildings/82.png"},
	{"замк", "Buildings/82.png"},
	{"частокол", "Buildings/72.png"},
	{"каменные стены", "Buildings/117.png"},
	{"каменных стен", "Buildings/117.png"},
	{"стен", "Buildings/117.png"},
	{"ворот", "Buildings/487.png"},
	{"сторожев", "Buildings/79.png"},
	{"башн", "Buildings/79.png"},
	{"охранная башня", "Buildings/234.png"},
	{"охранные башни", "Buildings/234.png"},
	{"крепост", "Buildings/235.png"},
	{"бомбардная башня", "Buildings/236.png"},
	{"бомбардные башни", "Buildings/236.png"},
	{"застав", "Buildings/598.png"},
	{"чудо света", "Buildings/276.png"},
	{"чудеса света", "Buildings/276.png"},
	{"чуда света", "Buildings/276.png"},
	{"фактори", "Buildings/1021.png"},

	// Resources
	{"еда", "Buildings/68.png"},
	{"еды", "Buildings/68.png"},
	{"еду", "Buildings/68.png"},
	{"пищ", "Buildings/68.png"},
	{"охот", "Buildings/68.png"},
	{"ягод", "Buildings/68.png"},
	{"дерев", "Buildings/562.png"},
	{"древесин", "Buildings/562.png"},
	{"золот", "Buildings/584.png"},
	{"камн", "Buildings/584.png"},
	{"камен", "Buildings/584.png"},

	// Economy technologies
	{"ткацк", "Techs/22.png"},
	{"тачк", "Techs/213.png"},
	{"ручная тележка", "Techs/249.png"},
	{"ручной тележки", "Techs/249.png"},
	{"двуручный топор", "Techs/202.png"},
	{"лучковая пила", "Techs/203.png"},
	{"двуручная пила", "Techs/221.png"},
	{"добыча золота", "Techs/55.png"},
	{"добычи золота", "Techs/55.png"},
	{"добыча камня", "Techs/278.png"},
	{"добычи камня", "Techs/278.png"},
	{"хомут", "Techs/14.png"},
	{"плуг", "Techs/13.png"},
	{"севооборот", "Techs/12.png"},
	{"караван", "Techs/48.png"},
	{"чеканк", "Techs/23.png"},
	{"банков", "Techs/17.png"},
	{"гильди", "Techs/15.png"},
	{"картограф", "Techs/19.png"},

	// Military technologies
	{"городская стража", "Techs/8.png"},
	{"городской стражи", "Techs/8.png"},
	{"городской патруль", "Techs/280.png"},
	{"баллистик", "Techs/93.png"},
	{"химия", "Techs/47.png"},
	{"химию", "Techs/47.png"},
	{"родослов", "Techs/435.png"},
	{"животноводств", "Techs/39.png"},
	{"парфянск", "Techs/436.png"},
	{"ковк", "Techs/67.png"},
	{"чугун", "Techs/68.png"},
	{"доменная печь", "Techs/75.png"},
	{"доменной печи", "Techs/75.png"},
	{"чешуйчат", "Techs/74.png"},
	{"кольчуг", "Techs/76.png"},
	{"латн", "Techs/77.png"},
	{"попон", "Techs/81.png"},
	{"оперени", "Techs/211.png"},
	{"граненый наконечник", "Techs/212.png"},
	{"граненые наконечники", "Techs/212.png"},
	{"наруч", "Techs/219.png"},
	{"стеганый доспех", "Techs/199.png"},
	{"кожаный доспех", "Techs/200.png"},
	{"кольчатый доспех", "Techs/201.png"},
	{"оруженос", "Techs/215.png"},
	{"поджог", "Techs/602.png"},
	{"повинност", "Techs/315.png"},
	{"снабжени", "Techs/716.png"},
	{"атак", "Techs/67.png"},
	{"брон", "Techs/74.png"},
	{"дальност", "Techs/211.png"},

	// Defensive and siege technologies
	{"каменная кладка", "Techs/50.png"},
	{"каменной кладки", "Techs/50.png"},
	{"архитектур", "Techs/51.png"},
	{"крепостные стены", "Techs/194.png"},
	{"крепостных стен", "Techs/194.png"},
	{"подъемный кран", "Techs/54.png"},
	{"бойниц", "Techs/322.png"},
	{"каленые ядра", "Techs/380.png"},
	{"осадные инженеры", "Techs/377.png"},
	{"осадных инженеров", "Techs/377.png"},
	{"сапер", "Techs/321.png"},

	// Naval technologies
	{"кренгован", "Techs/374.png"},
	{"сухой док", "Techs/375.png"},
	{"кораблестро", "Techs/373.png"},
	{"рыболовные сети", "Techs/65.png"},

	// Monastery technologies
	{"искуплени", "Techs/316.png"},
	{"покаяни", "Techs/319.png"},
	{"рвени", "Techs/252.png"},
	{"святост", "Techs/231.png"},
	{"иллюминаци", "Techs/233.png"},
	{"теократи", "Techs/438.png"},
	{"ересь", "Techs/439.png"},
	{"реликви", "Buildings/104.png"},

	// Ages
	{"феодальн", "Techs/101.png"},
	{"эпоха замков", "Techs/102.png"},
	{"эпоху замков", "Techs/102.png"},
	{"эпохе замков", "Techs/102.png"},
	{"эпохи замков", "Techs/102.png"},
	{"имперск", "Techs/103.png"},

	// Research in general
	{"уникальные технологии", "Techs/unique_tech_1.png"},
	{"уникальных технологий", "Techs/unique_tech_1.png"},
	{"уникальная технология", "Techs/unique_tech_1.png"},
	{"технологи", "Buildings/209.png"},
	{"улучшени", "Buildings/103.png"},
	{"исследовани", "Buildings/209.png"},
}

// DefaultIconTable returns a table built from the built-in keywords plus the
// given extensions
func DefaultIconTable(extra ...[]IconKeyword) *IconTable {
	lists := make([][]IconKeyword, 0, len(extra)+1)
	lists = append(lists, defaultIconKeywords)
	lists = append(lists, extra...)
	return NewIconTable(lists...)
}
