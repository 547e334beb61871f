package main

import "github.com/angelmondragon/storefront-backend/pkg/enums"

type sampleItem struct {
	Title       string
	Description string
	Price       string
	Category    enums.ItemCategory
	Tags        []string
	Image       string
	Stock       int
	Rating      float64
	ReviewCount int
	Specs       map[string]string
}

const (
	unsplash = "https://images.unsplash.com/"
	flixcart = "https://rukminim2.flixcart.com/image/612/612/"
)

var sampleCatalog = []sampleItem{
	{"T-shirt", "A comfortable and stylish t-shirt for everyday wear.", "250", enums.ItemCategoryClothing,
		[]string{"clothing", "t-shirt", "fashion"}, unsplash + "photo-1521572163474-6864f9cf17ab?w=500",
		200, 4.2, 80, map[string]string{"Material": "100% Cotton", "Fit": "Regular Fit"}},
	{"The Hobbit", "A classic fantasy novel by J.R.R. Tolkien.", "150", enums.ItemCategoryBooks,
		[]string{"books", "fantasy", "classic"}, flixcart + "l1mh7rk0/book/y/8/6/the-hobbit-original-imagd5phsmwyvbek.jpeg?q=70",
		150, 4.8, 400, map[string]string{"Author": "J.R.R. Tolkien", "Genre": "Fantasy"}},
	{"Engine Oil", "A high-performance engine oil that protects your engine and improves its performance.", "400", enums.ItemCategoryAutomotive,
		[]string{"automotive", "engine oil", "car care"}, flixcart + "xif0q/vehicle-lubricant/a/4/6/-original-imahbxmfg2bfmc5t.jpeg?q=70",
		100, 4.8, 200, map[string]string{"Viscosity": "5W-30", "Type": "Synthetic"}},
	{"1984", "A dystopian novel by George Orwell.", "120", enums.ItemCategoryBooks,
		[]string{"books", "dystopian", "classic"}, flixcart + "xif0q/book/e/i/u/1984-original-imahe9w9rkb6fzcm.jpeg?q=70",
		180, 4.9, 600, map[string]string{"Author": "George Orwell", "Genre": "Dystopian"}},
	{"The Lord of the Rings", "A classic epic fantasy novel by J.R.R. Tolkien.", "200", enums.ItemCategoryBooks,
		[]string{"books", "fantasy", "classic"}, flixcart + "xif0q/book/7/c/a/the-lord-of-the-rings-original-imagjxptrqzshc4z.jpeg?q=70",
		120, 4.9, 500, map[string]string{"Author": "J.R.R. Tolkien", "Genre": "Fantasy"}},
	{"Car Battery", "A reliable car battery that provides long-lasting power.", "1500", enums.ItemCategoryAutomotive,
		[]string{"automotive", "car battery", "car parts"}, flixcart + "xif0q/vehicle-battery/l/6/5/12-aam-fl-580112073-80-amaron-original-imagz96wjmreeq5q.jpeg?q=70",
		50, 4.7, 150, map[string]string{"Voltage": "12V", "Capacity": "60Ah"}},
	{"Sapiens: A Brief History of Humankind", "A thought-provoking book about the history of our species.", "180", enums.ItemCategoryBooks,
		[]string{"books", "history", "non-fiction"}, flixcart + "xif0q/book/e/d/g/sapiens-paperback-11-june-2015-original-imah4g3y2pzghxhy.jpeg?q=70",
		90, 4.8, 400, map[string]string{"Author": "Yuval Noah Harari", "Genre": "Non-fiction"}},
	{"Face Cream", "A nourishing face cream that hydrates and protects your skin.", "350", enums.ItemCategoryBeauty,
		[]string{"beauty", "skincare", "face cream"}, flixcart + "xif0q/moisturizer-cream/o/m/h/-original-imagzzm598qvyybx.jpeg?q=70",
		150, 4.5, 180, map[string]string{"Skin_Type": "All Skin Types", "Benefit": "Hydrating"}},
	{"Laptop", "A high-performance laptop for all your needs.", "12000", enums.ItemCategoryElectronics,
		[]string{"electronics", "laptop", "computer"}, unsplash + "photo-1541807084-5c52b6b3adef?w=500",
		50, 4.5, 150, map[string]string{"RAM": "16GB", "Storage": "512GB SSD", "Processor": "Intel Core i7"}},
	{"Smartphone", "A smartphone with a stunning display and a powerful camera.", "8000", enums.ItemCategoryElectronics,
		[]string{"electronics", "smartphone", "mobile"}, unsplash + "photo-1580910051074-3eb694886505?w=500",
		100, 4.7, 200, map[string]string{"Display": "6.5-inch OLED", "Camera": "48MP Triple Camera", "Battery": "4000mAh"}},
	{"Jeans", "A classic pair of jeans that never goes out of style.", "600", enums.ItemCategoryClothing,
		[]string{"clothing", "jeans", "denim"}, flixcart + "xif0q/jean/d/p/7/32-grey-wisker-2-brexx-original-imah3wjmgbk3mgh7.jpeg?q=70",
		150, 4.4, 120, map[string]string{"Material": "Denim", "Fit": "Slim Fit"}},
	{"Sofa", "A comfortable and elegant sofa for your living room.", "15000", enums.ItemCategoryHomeGarden,
		[]string{"home", "sofa", "furniture"}, unsplash + "photo-1540574163026-643ea20ade25?w=500",
		20, 4.8, 180, map[string]string{"Material": "Leather", "Seating": "3-seater"}},
	{"Shampoo", "A nourishing shampoo that cleanses and revitalizes your hair.", "150", enums.ItemCategoryBeauty,
		[]string{"beauty", "haircare", "shampoo"}, flixcart + "xif0q/shampoo/0/t/6/-original-imaha5fzjetam45y.jpeg?q=70",
		180, 4.4, 150, map[string]string{"Hair_Type": "All Hair Types", "Benefit": "Cleansing"}},
	{"Lipstick", "A long-lasting lipstick with a vibrant and creamy finish.", "200", enums.ItemCategoryBeauty,
		[]string{"beauty", "makeup", "lipstick"}, flixcart + "xif0q/lipstick/q/v/4/30-elegant-12-pcs-matte-lipstick-intense-pigment-smooth-finish-original-imah7utkmeh2vd7s.jpeg?q=70",
		200, 4.3, 120, map[string]string{"Finish": "Creamy", "Color": "Red"}},
	{"Car Wax", "A high-quality car wax that provides a brilliant shine and long-lasting protection.", "250", enums.ItemCategoryAutomotive,
		[]string{"automotive", "car care", "wax"}, flixcart + "xif0q/vehicle-washing-liquid/k/f/m/500-wash-wax-auto-wash-shampoo-wash-wax-auto-wash-shampoo-original-imaghfw2peyh2vnn.jpeg?q=70",
		80, 4.7, 150, map[string]string{"Type": "Synthetic Wax", "Application": "Hand or Machine"}},
	{"Tire Shine", "A tire shine that gives your tires a deep, black, and wet look.", "150", enums.ItemCategoryAutomotive,
		[]string{"automotive", "car care", "tire shine"}, flixcart + "xif0q/wheel-tire-cleaner/a/y/4/400-1-tyre-polish-black-shine-finish-the-black-beast-original-imahfgfuhmgnpsxu.jpeg?q=70",
		100, 4.5, 100, map[string]string{"Finish": "Wet Look", "Application": "Spray"}},
	{"Keyboard", "A mechanical keyboard with customizable RGB lighting.", "1500", enums.ItemCategoryElectronics,
		[]string{"electronics", "keyboard", "gaming"}, flixcart + "xif0q/keyboard/multi-device-keyboard/u/m/a/k500-usb-keyboard-zebion-original-imah4ym7mhjaeagz.jpeg?q=70",
		60, 4.6, 180, map[string]string{"Switch_Type": "Cherry MX Brown", "Layout": "Full-size"}},
	{"Basketball", "A high-quality basketball for indoor and outdoor use.", "300", enums.ItemCategorySports,
		[]string{"sports", "basketball", "ball"}, flixcart + "kkimfm80/ball/4/r/2/100-7-engraver-nv-201-basketball-nivia-original-imafzungs7v2zkny.jpeg?q=70",
		100, 4.9, 250, map[string]string{"Size": "7", "Material": "Composite Leather"}},
	{"Mouse", "A high-precision gaming mouse with adjustable DPI.", "800", enums.ItemCategoryElectronics,
		[]string{"electronics", "mouse", "gaming"}, flixcart + "xif0q/mouse/g/v/s/zeb-phero-with-dpi-switch-high-precision-plug-play-4-buttons-original-imahbk9fw8yps5hz.jpeg?q=70",
		90, 4.8, 220, map[string]string{"DPI": "16000", "Buttons": "6 programmable buttons"}},
	{"Watch", "A classic and elegant watch for a sophisticated look.", "2500", enums.ItemCategoryClothing,
		[]string{"clothing", "watch", "accessory"}, unsplash + "photo-1524805444758-089113d48a6d?w=500",
		100, 4.7, 200, map[string]string{"Movement": "Automatic", "Case_Material": "Stainless Steel"}},
	{"Bed", "A comfortable and supportive bed for a good night's sleep.", "10000", enums.ItemCategoryHomeGarden,
		[]string{"home", "bed", "furniture"}, unsplash + "photo-1505693416388-ac5ce068fe85?w=500",
		30, 4.9, 250, map[string]string{"Size": "Queen", "Material": "Memory Foam"}},
	{"Desk", "A modern and spacious desk for your home office.", "4000", enums.ItemCategoryHomeGarden,
		[]string{"home", "desk", "furniture"}, flixcart + "xif0q/computer-table/z/4/f/60-136-particle-board-31-9-9409221-madesa-75-black-blue-original-imahdz6murb3ctdc.jpeg?q=70",
		40, 4.7, 120, map[string]string{"Material": "Wood", "Size": "120cm x 60cm"}},
	{"Treadmill", "A high-performance treadmill for a great cardio workout.", "12000", enums.ItemCategorySports,
		[]string{"sports", "fitness", "treadmill"}, flixcart + "xif0q/treadmill/e/p/6/tdm-96-4hp-peak-motorized-foldable-running-machine-for-home-original-imahegmtkzz8svth.jpeg?q=70",
		15, 4.9, 300, map[string]string{"Speed": "Up to 20km/h", "Incline": "Up to 15%"}},
	{"Bicycle", "A lightweight and durable bicycle for a smooth ride.", "6000", enums.ItemCategorySports,
		[]string{"sports", "bicycle", "cycling"}, unsplash + "photo-1485965120184-e220f721d03e?w=500",
		35, 4.7, 180, map[string]string{"Frame": "Aluminum", "Gears": "21-speed"}},
	{"To Kill a Mockingbird", "A classic novel by Harper Lee.", "100", enums.ItemCategoryBooks,
		[]string{"books", "classic", "fiction"}, flixcart + "xif0q/regionalbooks/g/e/c/to-kill-a-mockingbird-harper-lee-original-imaheya2dhgjbfd4.jpeg?q=70",
		200, 4.9, 700, map[string]string{"Author": "Harper Lee", "Genre": "Fiction"}},
	{"Conditioner", "A moisturizing conditioner that leaves your hair soft and smooth.", "150", enums.ItemCategoryBeauty,
		[]string{"beauty", "haircare", "conditioner"}, flixcart + "xif0q/conditioner/e/t/n/-original-imah32qefya4gkxr.jpeg?q=70",
		180, 4.5, 160, map[string]string{"Hair_Type": "All Hair Types", "Benefit": "Moisturizing"}},
	{"Dumbbells", "A set of adjustable dumbbells for a versatile workout.", "2000", enums.ItemCategorySports,
		[]string{"sports", "fitness", "dumbbells"}, flixcart + "xif0q/dumbbell/p/i/x/pvc-1-pair-hex-home-gym-5kgs-x-2pcs-5-fastero-fitness-original-imahcw4vakh2bzwj.jpeg?q=70",
		60, 4.8, 200, map[string]string{"Weight": "Up to 24kg", "Material": "Cast Iron"}},
	{"Coffee Table", "A stylish and functional coffee table for your living room.", "2500", enums.ItemCategoryHomeGarden,
		[]string{"home", "coffee table", "furniture"}, flixcart + "xif0q/coffee-table/h/j/x/55-mdf-55-7-bult-tbl-w-online-decor-shoppee-45-white-original-imahd684zuahhugw.jpeg?q=70",
		50, 4.6, 90, map[string]string{"Material": "Wood", "Shape": "Rectangular"}},
	{"Yoga Mat", "A comfortable and non-slip yoga mat for your practice.", "400", enums.ItemCategorySports,
		[]string{"sports", "yoga", "fitness"}, flixcart + "xif0q/shopsy-sport-mat/x/i/r/eva-tpe-anti-slip-home-gym-exercise-workout-fitness-for-men-original-imah35zzcfr6ycqv.jpeg?q=70",
		80, 4.7, 150, map[string]string{"Thickness": "6mm", "Material": "TPE"}},
	{"Hoodie", "A warm and comfortable hoodie for a casual look.", "500", enums.ItemCategoryClothing,
		[]string{"clothing", "hoodie", "fashion"}, unsplash + "photo-1564557287817-3785e38ec1f5?w=500&h=500&fit=crop&crop=center",
		180, 4.3, 100, map[string]string{"Material": "Fleece", "Fit": "Regular Fit"}},
	{"Sunscreen", "A broad-spectrum sunscreen that protects your skin from harmful UV rays.", "200", enums.ItemCategoryBeauty,
		[]string{"beauty", "skincare", "sunscreen"}, flixcart + "xif0q/sunscreen/v/n/a/80-lightweight-gel-sunscreen-no-white-cast-for-men-women-55-original-imaheb5n9qqgfhz2.jpeg?q=70",
		200, 4.6, 180, map[string]string{"SPF": "50+", "Skin_Type": "All Skin Types"}},
	{"Headphones", "Noise-cancelling headphones for an immersive audio experience.", "3000", enums.ItemCategoryElectronics,
		[]string{"electronics", "headphones", "audio"}, unsplash + "photo-1505740420928-5e560c06d30e?w=500",
		75, 4.9, 300, map[string]string{"Type": "Over-ear", "Connectivity": "Bluetooth"}},
	{"Dining Table", "A spacious and elegant dining table for your family meals.", "8000", enums.ItemCategoryHomeGarden,
		[]string{"home", "dining table", "furniture"}, flixcart + "xif0q/dining-set/w/u/z/-original-imah3crexbbkvbw4.jpeg?q=70",
		25, 4.8, 180, map[string]string{"Material": "Wood", "Seating": "6-seater"}},
	{"Sneakers", "A stylish and comfortable pair of sneakers for everyday wear.", "900", enums.ItemCategoryClothing,
		[]string{"clothing", "sneakers", "footwear"}, unsplash + "photo-1549298916-b41d501d3772?w=500&h=500&fit=crop&crop=center",
		120, 4.5, 150, map[string]string{"Material": "Canvas", "Sole": "Rubber"}},
}
